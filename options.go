package runsearch

type options struct {
	logger      *Logger
	parallelism int
}

// Option configures Searcher behavior.
type Option func(*options)

// WithLogger configures the logger used by the Searcher.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithParallelism configures the number of goroutines LowBatchParallel
// spreads a batch across.
//
// Values <= 1 disable parallel dispatch (the default): batches run as a
// single recursive search on the calling goroutine.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
