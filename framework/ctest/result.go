package ctest

import (
	"strings"
)

// Outcome is the classification of a single recorded test.
type Outcome int

const (
	// Pass means the test ran and every expectation held.
	Pass Outcome = iota
	// Fail means the test ran and at least one expectation did not hold.
	Fail
	// Skip means the test was not meaningfully executable, for instance because a
	// prerequisite produced no usable data.
	Skip
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the outcome by name.
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// TestIDSeparator is used between the components of a TestID in its string form. Test names
// often contain URL paths, so a slash can't be used.
const TestIDSeparator = " > "

// TestID is the full name of a test scope: the names of all of its enclosing scopes
// followed by its own name.
type TestID []string

func (t TestID) String() string {
	return strings.Join(t, TestIDSeparator)
}

func (t TestID) Plus(name string) TestID {
	return append(append(TestID(nil), t...), name)
}

// Name returns the last component of the ID, or "" for the root scope.
func (t TestID) Name() string {
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1]
}

// Category returns the first component of the ID, or "" for the root scope.
func (t TestID) Category() string {
	if len(t) == 0 {
		return ""
	}
	return t[0]
}

// ParseTestID is the inverse of TestID.String.
func ParseTestID(s string) TestID {
	if s == "" {
		return nil
	}
	return TestID(strings.Split(s, TestIDSeparator))
}

// TestResult is the outcome of one test scope. It is not modified after being recorded.
type TestResult struct {
	ID      TestID
	Outcome Outcome
	// Message describes the outcome: the pass message set with T.Pass, the skip reason, or
	// the failure messages.
	Message string
	Errors  []error
}

func (r TestResult) Name() string     { return r.ID.Name() }
func (r TestResult) Category() string { return r.ID.Category() }

func errorsMessage(errs []error) string {
	ss := make([]string, 0, len(errs))
	for _, e := range errs {
		ss = append(ss, e.Error())
	}
	return strings.Join(ss, "; ")
}
