// Package scenario replays scripted operations against a sequence.Store and
// checks their outcome. Scenarios are written in YAML:
//
//	scenarios:
//	  - name: insert before the last value
//	    steps:
//	      - {op: from_values, seq: s, values: [B, C, D, F]}
//	      - {op: insert_before, seq: s, value: E}
//	      - {op: expect_display, seq: s, want: "{B, C, D, >E, F} (capacity = 10)"}
package scenario

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Operations.
const (
	OpNew           = "new"
	OpFromValues    = "from_values"
	OpInsertBefore  = "insert_before"
	OpInsertAfter   = "insert_after"
	OpAppendAll     = "append_all"
	OpAdvance       = "advance"
	OpStart         = "start"
	OpRemoveCurrent = "remove_current"
	OpReserve       = "reserve"
	OpTrim          = "trim"
	OpClone         = "clone"
	OpConcatenate   = "concatenate"

	OpExpectDisplay    = "expect_display"
	OpExpectSize       = "expect_size"
	OpExpectCapacity   = "expect_capacity"
	OpExpectCurrent    = "expect_current"
	OpExpectHasCurrent = "expect_has_current"
	OpExpectEqual      = "expect_equal"
)

// Error kinds accepted by want_error.
const (
	ErrorInvalidArgument = "invalid_argument"
	ErrorInvalidState    = "invalid_state"
)

// NoCurrent is the value reported by expect_current when a sequence has no
// current element.
const NoCurrent = "(none)"

// ErrInvalidScenario is returned when a scenario file cannot be used.
var ErrInvalidScenario = errors.New("invalid scenario")

type opKind struct {
	expectation bool
	needsOther  bool
	needsInto   bool
	needsCap    bool
	numericWant bool
	boolWant    bool
}

var ops = map[string]opKind{
	OpNew:           {},
	OpFromValues:    {},
	OpInsertBefore:  {},
	OpInsertAfter:   {},
	OpAppendAll:     {needsOther: true},
	OpAdvance:       {},
	OpStart:         {},
	OpRemoveCurrent: {},
	OpReserve:       {needsCap: true},
	OpTrim:          {},
	OpClone:         {needsInto: true},
	OpConcatenate:   {needsOther: true, needsInto: true},

	OpExpectDisplay:    {expectation: true},
	OpExpectSize:       {expectation: true, numericWant: true},
	OpExpectCapacity:   {expectation: true, numericWant: true},
	OpExpectCurrent:    {expectation: true},
	OpExpectHasCurrent: {expectation: true, boolWant: true},
	OpExpectEqual:      {expectation: true, needsOther: true, boolWant: true},
}

// A Step is a single operation or expectation of a scenario.
type Step struct {
	Op        string   `yaml:"op"`
	Seq       string   `yaml:"seq"`
	Other     string   `yaml:"other,omitempty"`
	Into      string   `yaml:"into,omitempty"`
	Value     string   `yaml:"value,omitempty"`
	Values    []string `yaml:"values,omitempty"`
	Capacity  *int     `yaml:"capacity,omitempty"`
	Want      *string  `yaml:"want,omitempty"`
	WantError string   `yaml:"want_error,omitempty"`
	Label     string   `yaml:"label,omitempty"`
}

// A Scenario is a named list of steps replayed against an empty store.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Parse decodes and validates the scenarios held in data.
func Parse(data []byte) ([]Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrInvalidScenario, "no scenarios")
		}
		return nil, errors.Wrapf(ErrInvalidScenario, "decode: %s", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, errors.Wrap(ErrInvalidScenario, "no scenarios")
	}
	for i := range f.Scenarios {
		if err := f.Scenarios[i].validate(); err != nil {
			return nil, err
		}
	}
	return f.Scenarios, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	scenarios, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return scenarios, nil
}

func (sc Scenario) validate() error {
	if sc.Name == "" {
		return errors.Wrap(ErrInvalidScenario, "scenario without a name")
	}
	if len(sc.Steps) == 0 {
		return errors.Wrapf(ErrInvalidScenario, "scenario %q: no steps", sc.Name)
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return errors.Wrapf(err, "scenario %q step %d", sc.Name, i+1)
		}
	}
	return nil
}

func (s Step) validate() error {
	kind, ok := ops[s.Op]
	if !ok {
		return errors.Wrapf(ErrInvalidScenario, "unknown op %q", s.Op)
	}
	if s.Seq == "" {
		return errors.Wrapf(ErrInvalidScenario, "%s: missing seq", s.Op)
	}
	if kind.needsOther && s.Other == "" {
		return errors.Wrapf(ErrInvalidScenario, "%s: missing other", s.Op)
	}
	if kind.needsInto && s.Into == "" {
		return errors.Wrapf(ErrInvalidScenario, "%s: missing into", s.Op)
	}
	if kind.needsCap && s.Capacity == nil {
		return errors.Wrapf(ErrInvalidScenario, "%s: missing capacity", s.Op)
	}
	if kind.expectation {
		if s.WantError != "" {
			return errors.Wrapf(ErrInvalidScenario, "%s: want_error is only valid on operations", s.Op)
		}
		if s.Want == nil {
			return errors.Wrapf(ErrInvalidScenario, "%s: missing want", s.Op)
		}
		if kind.numericWant {
			if _, err := strconv.Atoi(*s.Want); err != nil {
				return errors.Wrapf(ErrInvalidScenario, "%s: want %q is not an integer", s.Op, *s.Want)
			}
		}
		if kind.boolWant {
			if _, err := strconv.ParseBool(*s.Want); err != nil {
				return errors.Wrapf(ErrInvalidScenario, "%s: want %q is not a boolean", s.Op, *s.Want)
			}
		}
		return nil
	}
	if s.Want != nil {
		return errors.Wrapf(ErrInvalidScenario, "%s: want is only valid on expectations", s.Op)
	}
	switch s.WantError {
	case "", ErrorInvalidArgument, ErrorInvalidState:
	default:
		return errors.Wrapf(ErrInvalidScenario, "%s: unknown error kind %q", s.Op, s.WantError)
	}
	return nil
}
