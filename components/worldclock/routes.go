package worldclock

import (
	"fmt"

	"github.com/goliatone/go-worldclock/internal/routing"
)

// Mux is satisfied by *http.ServeMux.
type Mux = routing.Mux

// MountPath returns the clock route under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return routing.Join(basePath, opts.RoutePath)
}

// RegisterRoutes mounts h under basePath using the route path h was built
// with.
func RegisterRoutes(mux Mux, basePath string, h *Handler) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("worldclock: missing mux")
	}
	if h == nil {
		return "", fmt.Errorf("worldclock: missing handler")
	}
	pattern := routing.Join(basePath, h.opts.RoutePath)
	mux.Handle(pattern, h)
	return pattern, nil
}
