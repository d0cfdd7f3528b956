package worldclock

import "net/http"

// Component bundles the clock handler with its options and routes. Close
// must be called to stop background refreshes.
type Component struct {
	opts    Options
	handler *Handler
}

// New builds a component from the defaults plus overrides.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)
	h, err := HandlerWithOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Component{opts: opts, handler: h}, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return NewOptions(func(o *Options) { *o = c.opts })
}

func (c *Component) Handler() http.Handler {
	return c.handler
}

// RegisterRoutes mounts the clock page under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutes(mux, basePath, c.handler)
}

// Sessions lists the city lists with a live board, most recent first.
func (c *Component) Sessions() []string {
	return c.handler.Sessions()
}

func (c *Component) Close() {
	c.handler.Close()
}
