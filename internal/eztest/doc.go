// Package eztest is a small embedded test runner.
//
// A driver creates one Context, runs named test functions against it and
// prints a summary:
//
//	cx := eztest.New()
//	_ = cx.RunTest("This test should pass", func(cx *eztest.Context) {
//	    cx.ExpectEqual(1, 1)
//	})
//	_ = cx.RunTest("This test should fail", func(cx *eztest.Context) {
//	    cx.ExpectEqual(0, 1)
//	})
//	_ = cx.PrintResults()
//
// # Output
//
// A passing test renders on one line:
//
//	This test should pass... PASS (0 ms)
//
// A failing test reports its first few failed expectations (five by default,
// see WithReportLimit), a count of the ones left out, and a closing line:
//
//	This test should fail...
//	  FAILED [2]: expected 1, got 0
//	This test should fail... FAIL (0 ms)
//
// PrintResults writes the totals for the whole run:
//
//	===================================
//	ASSERTIONS FAILED:          1
//	ASSERTIONS MADE:            2
//	===================================
//
// # Timing
//
// Each test is timed with a stopwatch that is paused while an expectation is
// being recorded, so diagnostic output is not charged to the test.
//
// # Failure handling
//
// A failed expectation is not an error: it is counted, reported and the run
// continues. Only stopwatch misuse is returned as an error. A panic inside a
// test function is not recovered and ends the run.
//
// Thread-safety: a Context is meant for a single goroutine.
package eztest
