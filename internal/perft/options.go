package perft

import "runtime"

type config struct {
	workers int
	cache   Cache
}

func newConfig(opts []Option) config {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a perft run.
type Option func(*config)

// WithWorkers bounds the number of goroutines CountParallel uses.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithCache reuses subtree counts across transpositions and runs.
func WithCache(cache Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}
