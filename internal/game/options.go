package game

import "log"

type config struct {
	materialRules   MaterialRules
	repetitionLimit int
	logger          *log.Logger
}

func defaultConfig() config {
	return config{
		materialRules:   DefaultMaterialRules,
		repetitionLimit: 3,
	}
}

// Option configures a Tracker.
type Option func(*config)

// WithMaterialRules sets the insufficient-material table. Pass
// NoMaterialRules to leave such positions to the other draw rules.
func WithMaterialRules(r MaterialRules) Option {
	return func(c *config) {
		c.materialRules = r
	}
}

// WithRepetitionLimit sets how many occurrences of a position draw the game.
func WithRepetitionLimit(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.repetitionLimit = n
		}
	}
}

// WithLogger makes the tracker log when the game ends.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
