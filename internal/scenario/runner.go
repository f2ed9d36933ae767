package scenario

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/geofduf/text-sequence/sequence"
)

// A Result is the outcome of one expectation, or of an operation that was
// expected to fail or failed unexpectedly.
type Result struct {
	Step   int
	Label  string
	Passed bool
	Got    string
	Want   string
}

// A Report holds the results of a scenario, in step order.
type Report struct {
	Scenario string
	Results  []Result
	// Aborted is true when an operation failed unexpectedly and the
	// remaining steps were skipped.
	Aborted bool
}

// Failed returns the number of failed results.
func (r Report) Failed() int {
	n := 0
	for _, v := range r.Results {
		if !v.Passed {
			n++
		}
	}
	return n
}

// Runner replays scenarios. Each scenario runs against its own store.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner creates a Runner logging step activity to logger.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the steps of sc in order.
func (r *Runner) Run(sc Scenario) Report {
	store := sequence.NewStore()
	report := Report{Scenario: sc.Name}
	logger := r.logger.With().Str("scenario", sc.Name).Logger()
	for i, step := range sc.Steps {
		n := i + 1
		logger.Debug().Int("step", n).Str("op", step.Op).Str("seq", step.Seq).Msg("executing step")
		if ops[step.Op].expectation {
			res := check(store, step)
			res.Step = n
			if !res.Passed {
				logger.Warn().Int("step", n).Str("got", res.Got).Str("want", res.Want).Msg(res.Label)
			}
			report.Results = append(report.Results, res)
			continue
		}
		err := apply(store, step)
		if step.WantError != "" {
			got := errorKind(err)
			res := Result{
				Step:   n,
				Label:  label(step, fmt.Sprintf("%s %s fails with %s", step.Op, step.Seq, step.WantError)),
				Passed: got == step.WantError,
				Got:    got,
				Want:   step.WantError,
			}
			report.Results = append(report.Results, res)
			continue
		}
		if err != nil {
			logger.Error().Err(err).Int("step", n).Str("op", step.Op).Msg("operation failed, skipping remaining steps")
			report.Results = append(report.Results, Result{
				Step:  n,
				Label: label(step, fmt.Sprintf("%s %s", step.Op, step.Seq)),
				Got:   err.Error(),
				Want:  "no error",
			})
			report.Aborted = true
			break
		}
	}
	logger.Info().Int("results", len(report.Results)).Int("failed", report.Failed()).Msg("scenario done")
	return report
}

func apply(store *sequence.Store, step Step) error {
	switch step.Op {
	case OpNew:
		n := sequence.DefaultCapacity
		if step.Capacity != nil {
			n = *step.Capacity
		}
		return store.New(step.Seq, n)
	case OpFromValues:
		store.Add(step.Seq, sequence.NewSequenceFromValues(step.Values))
		return nil
	case OpClone:
		return store.Clone(step.Into, step.Seq)
	case OpConcatenate:
		return store.Concatenate(step.Into, step.Seq, step.Other)
	}
	statement := sequence.Statement{Key: step.Seq}
	switch step.Op {
	case OpInsertBefore:
		statement.Type = sequence.StatementInsertBefore
		statement.Value = step.Value
	case OpInsertAfter:
		statement.Type = sequence.StatementInsertAfter
		statement.Value = step.Value
	case OpAppendAll:
		statement.Type = sequence.StatementAppendAll
		statement.Source = step.Other
	case OpAdvance:
		statement.Type = sequence.StatementAdvance
	case OpStart:
		statement.Type = sequence.StatementStart
	case OpRemoveCurrent:
		statement.Type = sequence.StatementRemoveCurrent
	case OpReserve:
		statement.Type = sequence.StatementReserve
		statement.Capacity = *step.Capacity
	case OpTrim:
		statement.Type = sequence.StatementTrimToFit
	default:
		return errors.Wrapf(ErrInvalidScenario, "unknown op %q", step.Op)
	}
	return store.Execute(statement)
}

func check(store *sequence.Store, step Step) Result {
	res := Result{
		Label: label(step, fmt.Sprintf("%s %s", step.Op, step.Seq)),
		Want:  *step.Want,
	}
	s, ok := store.Get(step.Seq)
	if !ok {
		res.Got = fmt.Sprintf("sequence %q does not exist", step.Seq)
		return res
	}
	switch step.Op {
	case OpExpectDisplay:
		res.Got = s.String()
	case OpExpectSize:
		res.Got = strconv.Itoa(s.Len())
	case OpExpectCapacity:
		res.Got = strconv.Itoa(s.Cap())
	case OpExpectCurrent:
		res.Got = NoCurrent
		if v, ok := s.Current(); ok {
			res.Got = v
		}
	case OpExpectHasCurrent:
		res.Got = strconv.FormatBool(s.HasCurrent())
	case OpExpectEqual:
		other, ok := store.Get(step.Other)
		if !ok {
			res.Got = fmt.Sprintf("sequence %q does not exist", step.Other)
			return res
		}
		res.Got = strconv.FormatBool(s.Equal(other))
	}
	res.Passed = normalize(step.Op, res.Got) == normalize(step.Op, res.Want)
	return res
}

// normalize makes boolean and integer expectations insensitive to spelling,
// so that "TRUE" matches "true" and "07" matches "7".
func normalize(op, v string) string {
	kind := ops[op]
	switch {
	case kind.boolWant:
		if b, err := strconv.ParseBool(v); err == nil {
			return strconv.FormatBool(b)
		}
	case kind.numericWant:
		if n, err := strconv.Atoi(v); err == nil {
			return strconv.Itoa(n)
		}
	}
	return v
}

func errorKind(err error) string {
	switch {
	case err == nil:
		return "no error"
	case errors.Is(err, sequence.ErrInvalidArgument):
		return ErrorInvalidArgument
	case errors.Is(err, sequence.ErrInvalidState):
		return ErrorInvalidState
	}
	return err.Error()
}

func label(step Step, fallback string) string {
	if step.Label != "" {
		return step.Label
	}
	return fallback
}
