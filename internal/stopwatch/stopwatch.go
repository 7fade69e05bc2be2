// Package stopwatch measures running time across pause/resume cycles.
//
// A Stopwatch records one Interval per Start/Stop pair. Elapsed folds over the
// recorded intervals, so pausing and resuming never needs a running total to
// be kept in sync.
//
//	sw := stopwatch.New(nil)
//	_ = sw.Start()
//	work()
//	_ = sw.Stop()  // pause
//	bookkeeping()
//	_ = sw.Start() // resume
//	work()
//	_ = sw.Stop()
//	fmt.Println(sw.Elapsed().Milliseconds())
//
// Thread-safety: a Stopwatch is not safe for concurrent use.
package stopwatch

import "time"

// Interval is one contiguous running period.
// Stop is meaningful only once Running is false.
type Interval struct {
	Start   time.Time
	Stop    time.Time
	Running bool
}

// elapsed returns the length of the interval, measured up to now while it
// is still running.
func (iv Interval) elapsed(now time.Time) time.Duration {
	if iv.Running {
		return now.Sub(iv.Start)
	}
	return iv.Stop.Sub(iv.Start)
}

// Stopwatch accumulates running time over a sequence of intervals.
// Only the last interval may be running.
type Stopwatch struct {
	clock     Clock
	intervals []Interval
}

// New creates a stopwatch in the reset, paused state.
// A nil clock means SystemClock.
func New(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Stopwatch{clock: clock}
}

// Running reports whether the stopwatch is currently running.
func (s *Stopwatch) Running() bool {
	n := len(s.intervals)
	return n > 0 && s.intervals[n-1].Running
}

// Start begins a new running interval.
// Returns an InvalidStateError if the stopwatch is already running.
func (s *Stopwatch) Start() error {
	if s.Running() {
		return errAlreadyRunning()
	}
	s.intervals = append(s.intervals, Interval{
		Start:   s.clock.Now(),
		Running: true,
	})
	return nil
}

// Stop finalizes the running interval. The stopwatch can then be resumed
// with Start or cleared with Reset.
// Returns an InvalidStateError if the stopwatch is not running.
func (s *Stopwatch) Stop() error {
	if !s.Running() {
		return errNotRunning()
	}
	last := &s.intervals[len(s.intervals)-1]
	last.Stop = s.clock.Now()
	last.Running = false
	return nil
}

// Reset discards all intervals. Valid in any state; a running stopwatch is
// left stopped.
func (s *Stopwatch) Reset() {
	s.intervals = s.intervals[:0]
}

// Elapsed returns the time spent running since the last Reset, truncated to
// the millisecond. A running interval counts up to now.
func (s *Stopwatch) Elapsed() time.Duration {
	if len(s.intervals) == 0 {
		return 0
	}
	now := s.clock.Now()
	var sum time.Duration
	for _, iv := range s.intervals {
		sum += iv.elapsed(now)
	}
	return sum.Truncate(time.Millisecond)
}

// Intervals returns a copy of the recorded intervals, oldest first.
func (s *Stopwatch) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}
