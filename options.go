package ring

// ViewOption configures a View during creation.
//
// Example:
//
//	// Default 65% ring, no redraw notifications
//	v := ring.NewView()
//
//	// Custom style, host repaint hooked in
//	v := ring.NewView(ring.WithConfig(cfg), ring.WithInvalidator(win.Repaint))
type ViewOption func(*viewOptions)

// viewOptions holds optional configuration for View creation.
type viewOptions struct {
	config     Config
	invalidate func()
}

// defaultViewOptions returns the default view options.
func defaultViewOptions() viewOptions {
	return viewOptions{
		config:     DefaultConfig(),
		invalidate: func() {},
	}
}

// WithConfig sets the initial style and progress state.
// The config is typically produced by the config package loader.
func WithConfig(c Config) ViewOption {
	return func(o *viewOptions) {
		o.config = c
	}
}

// WithInvalidator sets the function called after every setter to ask the
// host for a redraw. A nil function disables notifications.
func WithInvalidator(fn func()) ViewOption {
	return func(o *viewOptions) {
		if fn == nil {
			fn = func() {}
		}
		o.invalidate = fn
	}
}
