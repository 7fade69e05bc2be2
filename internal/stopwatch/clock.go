package stopwatch

import "time"

// Clock is the time source a Stopwatch samples.
//
// Tests inject testutil.FakeClock to make elapsed time deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading, so
// differences between two Now() values are immune to wall-clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
