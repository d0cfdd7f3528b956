package worldclock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goliatone/go-worldclock/internal/logging"
	"github.com/goliatone/go-worldclock/internal/metrics"
	"github.com/goliatone/go-worldclock/pkg/board"
)

// ErrClosed is returned for requests arriving after Close.
var ErrClosed = errors.New("worldclock: handler closed")

// session is one live board and the controller refreshing it.
type session struct {
	key        string
	board      *board.Board
	controller *board.Controller
}

type sessionBuilder func(zones []string) (*session, error)

// sessions keeps one running board per distinct city list. The cache is
// bounded; evicted boards are stopped.
type sessions struct {
	mu     sync.Mutex
	cache  *lru.Cache[string, *session]
	build  sessionBuilder
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	logger  logging.Logger
	metrics *metrics.Metrics
}

func newSessions(size int, build sessionBuilder, logger logging.Logger, m *metrics.Metrics) (*sessions, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &sessions{
		build:   build,
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
		metrics: m,
	}
	cache, err := lru.NewWithEvict[string, *session](size, s.evicted)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("worldclock: session cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

func sessionKey(zones []string) string {
	return strings.Join(zones, ",")
}

// get returns the running session for zones, starting one when needed.
func (s *sessions) get(zones []string) (*session, error) {
	key := sessionKey(zones)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	if sess, ok := s.cache.Get(key); ok {
		return sess, nil
	}

	sess, err := s.build(zones)
	if err != nil {
		return nil, err
	}
	sess.key = key
	if err := sess.controller.Start(s.ctx); err != nil {
		return nil, fmt.Errorf("worldclock: start board: %w", err)
	}
	s.cache.Add(key, sess)

	n := s.cache.Len()
	s.metrics.SetSessions(n)
	s.logger.Info("clock board started", "cities", key, "sessions", n)
	return sess, nil
}

// evicted runs after the cache drops an entry, either to make room or
// during Close.
func (s *sessions) evicted(key string, sess *session) {
	sess.controller.Stop()
	if s.closed {
		return
	}
	s.metrics.ObserveEviction()
	s.metrics.SetSessions(s.cache.Len())
	s.logger.Debug("clock board evicted", "cities", key)
}

func (s *sessions) keys() []string {
	return s.cache.Keys()
}

// close stops every board. Later calls to get fail with ErrClosed.
func (s *sessions) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cache.Purge()
	s.cancel()
	s.metrics.SetSessions(0)
	s.logger.Info("clock boards stopped")
}
