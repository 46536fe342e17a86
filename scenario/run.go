package scenario

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/percona/percona-iulist/errors"
	"github.com/percona/percona-iulist/list"
	"github.com/percona/percona-iulist/log"
	"github.com/percona/percona-iulist/metrics"
	"github.com/percona/percona-iulist/sel"
)

// Failure is a step whose outcome differs from the expectation.
type Failure struct {
	Step int // 1-based
	Op   string
	Msg  string
}

func (f Failure) String() string {
	return fmt.Sprintf("step %d (%s): %s", f.Step, f.Op, f.Msg)
}

// CaseResult is the outcome of one case on one kind.
type CaseResult struct {
	Suite string
	Case  string
	Kind  list.Kind
	Steps int

	Failures []Failure
	// Final is the string form of the list after the last step.
	Final string
	// Capacity is the final backing capacity for array lists, 0 otherwise.
	Capacity int
}

// Passed reports whether all steps met their expectations.
func (r *CaseResult) Passed() bool {
	return len(r.Failures) == 0
}

// Report is the outcome of a suite on one kind.
type Report struct {
	Suite    string
	Kind     list.Kind
	Cases    []CaseResult
	Steps    int
	Duration time.Duration
}

// Failed returns the number of failed cases.
func (r *Report) Failed() int {
	n := 0
	for i := range r.Cases {
		if !r.Cases[i].Passed() {
			n++
		}
	}

	return n
}

// RunCase runs one case on a fresh list of the given kind.
func RunCase(ctx context.Context, suite string, c *Case, kind list.Kind) (CaseResult, error) {
	res := CaseResult{Suite: suite, Case: c.Name, Kind: kind}

	var opts []list.Option
	if c.Capacity > 0 {
		opts = append(opts, list.WithCapacity(c.Capacity))
	}

	l, err := list.New[string](kind, opts...)
	if err != nil {
		return res, errors.Wrap(err, "new list")
	}

	lg := log.Ctx(ctx).With(log.ListKind(string(kind)), log.Case(suite, c.Name))
	s := &state{list: l, cursors: make(map[string]cursor)}

	for i := range c.Steps {
		st := &c.Steps[i]
		f, ok := runStep(s, st, string(kind))
		res.Steps++
		if !ok {
			f.Step = i + 1
			res.Failures = append(res.Failures, f)
			lg.With(log.Step(i+1), log.Operation(st.Op)).Warn(f.Msg)
		} else {
			lg.With(log.Step(i+1), log.Operation(st.Op)).Trace("ok")
		}
	}

	res.Final = l.String()
	if a, ok := l.(*list.ArrayList[string]); ok {
		res.Capacity = a.Cap()
		metrics.SetArrayCapacity(suite+"."+c.Name, a.Cap())
	}

	metrics.AddCase(string(kind), res.Passed())
	lg.Debugf("done: %d steps, %d failures", res.Steps, len(res.Failures))

	return res, nil
}

// runStep executes st and compares the outcome with its expectation.
func runStep(s *state, st *Step, kind string) (Failure, bool) {
	def, ok := operations[st.Op]
	if !ok {
		return Failure{Op: st.Op, Msg: "unknown op"}, false
	}

	metrics.AddOperation(kind, st.Op)
	got, err := def.fn(s, st)
	if err != nil {
		metrics.AddFailure(kind, Reason(err))
	}

	switch {
	case st.Err != "" && err == nil:
		return Failure{Op: st.Op, Msg: "expected " + st.Err + " error, got " + quote(got)}, false
	case st.Err != "" && Reason(err) != st.Err:
		return Failure{Op: st.Op, Msg: "expected " + st.Err + " error, got: " + err.Error()}, false
	case st.Err == "" && err != nil:
		return Failure{Op: st.Op, Msg: "unexpected error: " + err.Error()}, false
	case st.Want != nil && got != *st.Want:
		return Failure{Op: st.Op, Msg: "expected " + quote(*st.Want) + ", got " + quote(got)}, false
	}

	return Failure{}, true
}

// Run runs the selected cases of the suite on one kind.
func Run(ctx context.Context, s *Suite, kind list.Kind, filter sel.CaseFilter) (*Report, error) {
	if filter == nil {
		filter = sel.AllowAllFilter
	}

	start := time.Now()
	rep := &Report{Suite: s.Name, Kind: kind}

	for i := range s.Cases {
		c := &s.Cases[i]
		if !c.Supports(kind) || !filter(s.Name, c.Name) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return rep, err //nolint:wrapcheck
		}

		res, err := RunCase(ctx, s.Name, c, kind)
		if err != nil {
			return rep, errors.Wrapf(err, "case %s", c.Name)
		}

		rep.Cases = append(rep.Cases, res)
		rep.Steps += res.Steps
	}

	rep.Duration = time.Since(start)

	return rep, nil
}

// RunKinds runs the suite on every kind concurrently. Each kind gets its own lists.
// Reports are returned in the order of kinds.
func RunKinds(
	ctx context.Context,
	s *Suite,
	kinds []list.Kind,
	filter sel.CaseFilter,
) ([]*Report, error) {
	reports := make([]*Report, len(kinds))

	grp, grpCtx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		grp.Go(func() error {
			rep, err := Run(grpCtx, s, kind, filter)
			if err != nil {
				return errors.Wrap(err, string(kind))
			}

			reports[i] = rep
			return nil
		})
	}

	err := grp.Wait()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return reports, nil
}
