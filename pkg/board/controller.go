package board

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goliatone/go-worldclock/pkg/clock"
)

// DefaultInterval is the refresh cadence of a running board.
const DefaultInterval = 60 * time.Second

// ErrAlreadyStarted is returned when Start is called more than once.
var ErrAlreadyStarted = errors.New("board: controller already started")

// State is the lifecycle state of a Controller.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// RefreshHook observes each refresh pass.
type RefreshHook func(updated int, elapsed time.Duration)

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithInterval overrides DefaultInterval. Non-positive values are ignored.
func WithInterval(interval time.Duration) ControllerOption {
	return func(c *Controller) {
		if interval > 0 {
			c.interval = interval
		}
	}
}

// WithClock sets the time source used for render and refresh passes.
func WithClock(src clock.Clock) ControllerOption {
	return func(c *Controller) {
		if src != nil {
			c.clock = src
		}
	}
}

// WithTicks drives refresh passes from ticks instead of an internal ticker.
// Closing the channel stops the controller.
func WithTicks(ticks <-chan time.Time) ControllerOption {
	return func(c *Controller) {
		c.ticks = ticks
	}
}

// WithRefreshHook registers a callback run after every refresh pass.
func WithRefreshHook(hook RefreshHook) ControllerOption {
	return func(c *Controller) {
		c.onRefresh = hook
	}
}

// Controller renders a board once and refreshes it on a fixed interval until
// stopped.
type Controller struct {
	board     *Board
	clock     clock.Clock
	interval  time.Duration
	ticks     <-chan time.Time
	onRefresh RefreshHook

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// NewController wraps b.
func NewController(b *Board, opts ...ControllerOption) *Controller {
	c := &Controller{
		board:    b,
		clock:    clock.SystemClock{},
		interval: DefaultInterval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Board returns the controlled board.
func (c *Controller) Board() *Board { return c.board }

// State reports the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed once the refresh loop has exited.
func (c *Controller) Done() <-chan struct{} { return c.done }

// Start renders the board and begins periodic refreshes. The loop runs until
// ctx is cancelled or Stop is called.
func (c *Controller) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	if c.state != StateUninitialized {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.board.Render(c.clock.Now())
	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = StateRunning
	c.mu.Unlock()

	ticks := c.ticks
	var ticker *time.Ticker
	if ticks == nil {
		ticker = time.NewTicker(c.interval)
		ticks = ticker.C
	}

	go c.loop(loopCtx, cancel, ticks, ticker)
	return nil
}

// Stop cancels the refresh loop and waits for it to exit. Stopping a
// controller that never started only marks it stopped.
func (c *Controller) Stop() {
	c.mu.Lock()
	switch c.state {
	case StateUninitialized:
		c.state = StateStopped
		close(c.done)
		c.mu.Unlock()
		return
	case StateStopped:
		c.mu.Unlock()
		<-c.done
		return
	}
	cancel := c.cancel
	c.mu.Unlock()

	cancel()
	<-c.done
}

// RefreshNow runs a refresh pass immediately.
func (c *Controller) RefreshNow() int {
	return c.refresh()
}

func (c *Controller) loop(ctx context.Context, cancel context.CancelFunc, ticks <-chan time.Time, ticker *time.Ticker) {
	defer func() {
		cancel()
		if ticker != nil {
			ticker.Stop()
		}
		c.mu.Lock()
		c.state = StateStopped
		c.mu.Unlock()
		close(c.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			c.refresh()
		}
	}
}

func (c *Controller) refresh() int {
	start := time.Now()
	updated := c.board.Refresh(c.clock.Now())
	if c.onRefresh != nil {
		c.onRefresh(updated, time.Since(start))
	}
	return updated
}
