package grouptopo

import (
	"context"
	"io"

	"github.com/grouptopo/grouptopo/driver"
	"github.com/grouptopo/grouptopo/hoistplan"
	"github.com/grouptopo/grouptopo/jsonio"
	"github.com/grouptopo/grouptopo/solver"
)

// RunOption configures Run, in the functional-options style.
type RunOption func(*runOptions)

type runOptions struct {
	verify        bool
	warn          io.Writer
	warnThreshold int
}

func defaultRunOptions() runOptions {
	return runOptions{warnThreshold: 0}
}

// WithVerify enables the (D<->T) and post-hoist toposortability assertions
// after hoist execution. Off by default, matching "only when debug
// assertions are enabled" in the component design.
func WithVerify(verify bool) RunOption {
	return func(o *runOptions) { o.verify = verify }
}

// WithWarnDiagnostics routes the permutation-search time-complexity warning
// to w, firing only when the local directory count exceeds threshold.
func WithWarnDiagnostics(w io.Writer, threshold int) RunOption {
	return func(o *runOptions) {
		o.warn = w
		o.warnThreshold = threshold
	}
}

// Run executes the full pipeline: parse r's JSON input, find and apply the
// hoists needed at every directory level, optionally verify the result, and
// write the hoist list to w as pretty JSON. ctx is honored only between one
// SCC's inner-solver call and the next, never inside the algorithm's own
// hot loops; a nil ctx is treated as context.Background().
func Run(ctx context.Context, r io.Reader, w io.Writer, opts ...RunOption) error {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, tree, err := jsonio.Parse(r)
	if err != nil {
		return err
	}

	hoists, err := driver.FindAllHoistsNeeded(ctx, g, tree, nil, solver.Options{
		Warn:          o.warn,
		WarnThreshold: o.warnThreshold,
	})
	if err != nil {
		return err
	}

	hoistplan.Execute(g, tree, hoists, o.verify)

	if o.verify {
		driver.AssertToposortPossible(g, tree)
	}

	return jsonio.Write(w, hoists)
}
