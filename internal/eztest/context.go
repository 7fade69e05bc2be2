package eztest

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/eztest/internal/stopwatch"
)

// TestFunc is a test body. It records expectations on cx and returns.
// Closures may capture whatever state the test needs.
type TestFunc func(cx *Context)

// Counters is the bookkeeping state of a Context.
type Counters struct {
	// AssertionNum is the 1-based number the next expectation gets.
	// It increases across the whole run and is never reset.
	AssertionNum int

	// Successes and Failures are run-wide totals.
	Successes int
	Failures  int

	// CurrentFailures counts failures in the running test only.
	// RunTest zeroes it before each test.
	CurrentFailures int
}

// Summary is the run-wide outcome reported by PrintResults.
type Summary struct {
	Failed int
	Made   int
}

// Context runs tests, records their expectations and prints results.
type Context struct {
	counters Counters

	out      io.Writer
	clock    stopwatch.Clock
	watch    *stopwatch.Stopwatch
	limit    int
	format   Formatter
	logger   *slog.Logger
	runIDGen RunIDGenerator
	runID    string

	// current is the name of the running test, "" when idle.
	current string

	// lineOpen is set while "<name>..." awaits the rest of its line.
	lineOpen bool

	// writeErr holds the first output error seen during the current test.
	writeErr error
}

// New creates a Context writing to os.Stdout unless configured otherwise.
func New(opts ...Option) *Context {
	c := &Context{
		counters: Counters{AssertionNum: 1},
		out:      os.Stdout,
		limit:    DefaultReportLimit,
		format:   DefaultFormatter,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		runIDGen: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.watch = stopwatch.New(c.clock)
	c.runID = c.runIDGen.Generate()
	return c
}

// RunID returns the ID attached to this run's log lines.
func (c *Context) RunID() string {
	return c.runID
}

// Counters returns a snapshot of the bookkeeping counters.
func (c *Context) Counters() Counters {
	return c.counters
}

// Summary returns the run-wide totals.
func (c *Context) Summary() Summary {
	return Summary{
		Failed: c.counters.Failures,
		Made:   c.counters.Failures + c.counters.Successes,
	}
}

// ExpectEqual records whether actual equals expected and returns the result.
//
// Values are compared with assert.ObjectsAreEqual, so values of different
// types are unequal and []byte compares by content. A mismatch is reported
// with a FAILED line while the test is within its report limit.
//
// The stopwatch is paused for the duration of the call.
func (c *Context) ExpectEqual(actual, expected any) bool {
	return c.record(actual, expected, assert.ObjectsAreEqual(expected, actual))
}

// Expect is the type-checked form of ExpectEqual for comparable values.
//
// When T is an interface type the dynamic values may not be comparable with
// ==, so they are compared like ExpectEqual does.
func Expect[T comparable](cx *Context, actual, expected T) bool {
	if reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface {
		return cx.record(actual, expected, assert.ObjectsAreEqual(expected, actual))
	}
	return cx.record(actual, expected, actual == expected)
}

func (c *Context) record(actual, expected any, equal bool) bool {
	// Expectations made outside RunTest find the stopwatch stopped.
	paused := c.watch.Running()
	if paused {
		_ = c.watch.Stop()
	}

	if equal {
		c.counters.Successes++
	} else {
		c.counters.Failures++
		c.counters.CurrentFailures++
		if c.counters.CurrentFailures <= c.limit {
			c.endLine()
			c.printf("  FAILED [%d]: expected %s, got %s\n",
				c.counters.AssertionNum, c.format(expected), c.format(actual))
		}
	}
	c.counters.AssertionNum++

	if paused {
		_ = c.watch.Start()
	}
	return equal
}

// RunTest runs fn as the test called name and reports PASS or FAIL with the
// time fn spent running.
//
// Returns an InvalidStateError when called while a test is running (from
// inside a test function); the running test is left untouched. Also returns
// output sink failures. A panic in fn is not recovered.
func (c *Context) RunTest(name string, fn TestFunc) error {
	if c.watch.Running() {
		// Start rejects a running stopwatch without changing it.
		return fmt.Errorf("run test %q: %w", name, c.watch.Start())
	}

	c.counters.CurrentFailures = 0
	c.writeErr = nil

	c.printf("%s...", name)
	c.lineOpen = true
	c.flush()

	// The stopwatch is idle here and record always restarts what it pauses,
	// so neither Start nor Stop can fail.
	_ = c.watch.Start()
	c.current = name
	c.logger.Debug("test started", "run_id", c.runID, "test", name)

	fn(c)

	_ = c.watch.Stop()
	c.current = ""

	elapsed := c.watch.Elapsed()
	failures := c.counters.CurrentFailures

	if omitted := failures - c.limit; omitted > 0 {
		c.endLine()
		c.printf("[%d other failures omitted]\n", omitted)
	}
	if failures == 0 {
		c.printf(" PASS (%d ms)\n", elapsed.Milliseconds())
	} else {
		c.endLine()
		c.printf("%s... FAIL (%d ms)\n", name, elapsed.Milliseconds())
	}
	c.lineOpen = false
	c.flush()
	c.watch.Reset()

	c.logger.Debug("test finished",
		"run_id", c.runID,
		"test", name,
		"pass", failures == 0,
		"failures", failures,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	if c.writeErr != nil {
		return fmt.Errorf("run test %q: write output: %w", name, c.writeErr)
	}
	return nil
}

// Current returns the name of the running test, or "" between tests.
func (c *Context) Current() string {
	return c.current
}

// PrintResults writes the run-wide failure and assertion totals.
// It does not change any state and may be called repeatedly.
func (c *Context) PrintResults() error {
	s := c.Summary()
	_, err := fmt.Fprintf(c.out,
		"===================================\n"+
			"ASSERTIONS FAILED:    %7d\n"+
			"ASSERTIONS MADE:      %7d\n"+
			"===================================\n",
		s.Failed, s.Made)
	if err != nil {
		return err
	}
	if f, ok := c.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// endLine terminates a pending "<name>..." line.
func (c *Context) endLine() {
	if c.lineOpen {
		c.printf("\n")
		c.lineOpen = false
	}
}

func (c *Context) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil && c.writeErr == nil {
		c.writeErr = err
	}
}

type flusher interface {
	Flush() error
}

func (c *Context) flush() {
	f, ok := c.out.(flusher)
	if !ok {
		return
	}
	if err := f.Flush(); err != nil && c.writeErr == nil {
		c.writeErr = err
	}
}
