package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/eztest/internal/eztest"
	"github.com/roach88/eztest/internal/stopwatch"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Limit    int // failures reported individually per test
	SlowSize int // side of the slow test's nested loop

	// Clock allows overriding the stopwatch clock (for testing).
	// If nil, defaults to the system clock.
	Clock stopwatch.Clock

	// RunIDGenerator allows overriding run IDs (for testing).
	// If nil, defaults to eztest.UUIDv7Generator.
	RunIDGenerator eztest.RunIDGenerator
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return newDemoCommand(&DemoOptions{RootOptions: rootOpts})
}

// newDemoCommand builds the demo command around opts, keeping any Clock or
// RunIDGenerator already set on it.
func newDemoCommand(opts *DemoOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration tests",
		Long: `Run three demonstration tests: one that passes, one that fails and
one that takes a while, then print the run summary.

Exit codes:
  0 - All expectations passed
  1 - One or more expectations failed
  2 - Command error

Examples:
  eztest demo
  eztest demo --limit 1
  eztest demo --slow-size 20000 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", eztest.DefaultReportLimit, "failed expectations reported per test")
	cmd.Flags().IntVar(&opts.SlowSize, "slow-size", 10000, "loop size of the slow test")

	return cmd
}

// DemoTest is one named demonstration test.
type DemoTest struct {
	Name string
	Fn   eztest.TestFunc
}

// DemoTests returns the demonstration tests. The slow test sums i-j over an
// n by n grid, which is zero for every n.
func DemoTests(n int) []DemoTest {
	return []DemoTest{
		{"This test should pass", func(cx *eztest.Context) {
			cx.ExpectEqual(1, 1)
		}},
		{"This test should fail", func(cx *eztest.Context) {
			cx.ExpectEqual(0, 1)
		}},
		{"This test should take a while", func(cx *eztest.Context) {
			sum := 0
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					sum += i - j
				}
			}
			cx.ExpectEqual(sum, 0)
		}},
	}
}

func runDemo(opts *DemoOptions, cmd *cobra.Command) error {
	if opts.SlowSize < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --slow-size %d: must not be negative", opts.SlowSize))
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	cxOpts := []eztest.Option{
		eztest.WithOutput(cmd.OutOrStdout()),
		eztest.WithReportLimit(opts.Limit),
		eztest.WithLogger(logger),
	}
	if opts.Clock != nil {
		cxOpts = append(cxOpts, eztest.WithClock(opts.Clock))
	}
	if opts.RunIDGenerator != nil {
		cxOpts = append(cxOpts, eztest.WithRunIDGenerator(opts.RunIDGenerator))
	}
	cx := eztest.New(cxOpts...)

	logger.Debug("demo starting", "run_id", cx.RunID(), "limit", opts.Limit, "slow_size", opts.SlowSize)

	for _, tc := range DemoTests(opts.SlowSize) {
		if err := cx.RunTest(tc.Name, tc.Fn); err != nil {
			return WrapExitError(ExitCommandError, "test run aborted", err)
		}
	}

	if err := cx.PrintResults(); err != nil {
		return WrapExitError(ExitCommandError, "failed to print results", err)
	}

	summary := cx.Summary()
	logger.Info("run complete", "run_id", cx.RunID(), "failed", summary.Failed, "made", summary.Made)

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d assertion(s) failed", summary.Failed))
	}
	return nil
}
