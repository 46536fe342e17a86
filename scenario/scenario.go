/*
Package scenario runs scripted operations against lists.

A scenario file is a YAML suite of named cases. Each case is a sequence of steps that
call list or iterator operations and state the expected result or error:

	suite: basics
	cases:
	  - name: growth
	    kinds: [array]
	    capacity: 2
	    steps:
	      - {op: addToRear, value: "1"}
	      - {op: capacity, want: "2"}
	      - {op: removeAt, index: 7, err: outOfBounds}

Every case runs once per selected list kind on a fresh list of strings.
*/
package scenario

import (
	"bytes"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/percona/percona-iulist/errors"
	"github.com/percona/percona-iulist/list"
)

// Suite is the top-level document of a scenario file.
type Suite struct {
	Name        string `yaml:"suite"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case is a named sequence of steps.
type Case struct {
	Name string `yaml:"name"`
	// Kinds restricts the case to the listed kinds. Empty means all kinds.
	Kinds []list.Kind `yaml:"kinds,omitempty"`
	// Capacity is the initial capacity of an array-backed list.
	Capacity int    `yaml:"capacity,omitempty"`
	Steps    []Step `yaml:"steps"`
}

// Step is one operation.
type Step struct {
	Op     string  `yaml:"op"`
	Value  *string `yaml:"value,omitempty"`
	Target *string `yaml:"target,omitempty"`
	Index  *int    `yaml:"index,omitempty"`
	// Iter names the iterator the step creates or uses.
	Iter string `yaml:"iter,omitempty"`

	// Want is the expected result in string form.
	Want *string `yaml:"want,omitempty"`
	// Err is the expected error reason. See Reason.
	Err string `yaml:"err,omitempty"`
}

// Supports reports whether the case runs for kind.
func (c *Case) Supports(kind list.Kind) bool {
	return len(c.Kinds) == 0 || slices.Contains(c.Kinds, kind)
}

// InvalidScenarioError reports a malformed scenario.
type InvalidScenarioError struct {
	Case string
	Step int // 1-based, 0 when the problem is not tied to a step
	Msg  string
}

func (e *InvalidScenarioError) Error() string {
	switch {
	case e.Case == "":
		return "invalid scenario: " + e.Msg
	case e.Step == 0:
		return "invalid scenario: case " + e.Case + ": " + e.Msg
	}

	return "invalid scenario: case " + e.Case + ": step " + itoa(e.Step) + ": " + e.Msg
}

// Load reads and parses a scenario file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Suite, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks names, operations and their arguments.
func (s *Suite) Validate() error {
	if s.Name == "" {
		return &InvalidScenarioError{Msg: "missing suite name"}
	}
	if len(s.Cases) == 0 {
		return &InvalidScenarioError{Msg: "no cases"}
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]

		if c.Name == "" {
			return &InvalidScenarioError{Msg: "case #" + itoa(i+1) + " has no name"}
		}
		if seen[c.Name] {
			return &InvalidScenarioError{Case: c.Name, Msg: "duplicate case name"}
		}
		seen[c.Name] = true

		for _, k := range c.Kinds {
			if _, err := list.ParseKind(string(k)); err != nil {
				return &InvalidScenarioError{Case: c.Name, Msg: err.Error()}
			}
		}

		if c.Capacity < 0 {
			return &InvalidScenarioError{Case: c.Name, Msg: "negative capacity"}
		}

		for j := range c.Steps {
			if msg := c.Steps[j].validate(); msg != "" {
				return &InvalidScenarioError{Case: c.Name, Step: j + 1, Msg: msg}
			}
		}
	}

	return nil
}

func (st *Step) validate() string {
	def, ok := operations[st.Op]
	if !ok {
		return "unknown op " + quote(st.Op)
	}

	switch {
	case def.args&argValue != 0 && st.Value == nil:
		return st.Op + ": missing value"
	case def.args&argTarget != 0 && st.Target == nil:
		return st.Op + ": missing target"
	case def.args&argIndex != 0 && st.Index == nil:
		return st.Op + ": missing index"
	case def.args&argIter != 0 && st.Iter == "":
		return st.Op + ": missing iter"
	}

	if st.Err != "" && !slices.Contains(Reasons(), st.Err) {
		return "unknown error reason " + quote(st.Err)
	}
	if st.Err != "" && st.Want != nil {
		return "want and err are exclusive"
	}

	return ""
}
