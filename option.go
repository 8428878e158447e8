package btset

// Options configures set behavior.
type Options struct {
	logger Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() Options {
	return Options{
		logger: DiscardLogger{},
	}
}

// Option configures set options using the functional options pattern.
type Option func(*Options)

// WithLogger sets the logger used to report structural check failures.
// The default logger discards everything.
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		opts.logger = l
	}
}
