package eztest

import (
	"io"
	"log/slog"

	"github.com/roach88/eztest/internal/stopwatch"
)

// DefaultReportLimit is how many failed expectations per test are reported
// individually before the rest are only counted.
const DefaultReportLimit = 5

// Option configures a Context.
type Option func(*Context)

// WithOutput sets the sink progress and results are written to.
// Defaults to os.Stdout. A sink with a Flush() error method is flushed after
// each test name so the name is visible while the test runs.
func WithOutput(w io.Writer) Option {
	return func(c *Context) {
		if w != nil {
			c.out = w
		}
	}
}

// WithClock sets the clock the test stopwatch samples.
func WithClock(clock stopwatch.Clock) Option {
	return func(c *Context) {
		c.clock = clock
	}
}

// WithReportLimit sets how many failures per test get a FAILED line.
// Negative values are treated as 0.
func WithReportLimit(n int) Option {
	return func(c *Context) {
		if n < 0 {
			n = 0
		}
		c.limit = n
	}
}

// WithFormatter sets how expected and actual values are rendered.
func WithFormatter(f Formatter) Option {
	return func(c *Context) {
		if f != nil {
			c.format = f
		}
	}
}

// WithLogger sets the structured logger. Defaults to a logger that discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRunIDGenerator overrides the run ID generator (for testing).
// Defaults to UUIDv7Generator.
func WithRunIDGenerator(gen RunIDGenerator) Option {
	return func(c *Context) {
		if gen != nil {
			c.runIDGen = gen
		}
	}
}
