package ctest

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/nirvanashop/shop-contract-tests/framework/helpers"
)

// Filter determines whether to run a specific test or not.
type Filter interface {
	Match(id TestID) bool
}

// FilterFunc adapts a plain function to Filter.
type FilterFunc func(TestID) bool

func (f FilterFunc) Match(id TestID) bool { return f(id) }

// RegexFilters selects tests by patterns given on the command line. A test runs if it matches
// some MustMatch pattern (or there are none), and no MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    TestIDPatternList
	MustNotMatch TestIDPatternList
}

func (r RegexFilters) Match(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(id, true)) &&
		!r.MustNotMatch.AnyMatch(id, false)
}

// IsDefined is true if there are any patterns at all.
func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// Describe writes a description of the filters to w, or nothing if there are none.
func (r RegexFilters) Describe(w io.Writer) {
	if !r.IsDefined() {
		return
	}
	helpers.MustFprintln(w, "Some tests will be skipped based on the filter criteria for this test run:")
	if r.MustMatch.IsDefined() {
		helpers.MustFprintf(w, "  skip any not matching %s\n", r.MustMatch)
	}
	if r.MustNotMatch.IsDefined() {
		helpers.MustFprintf(w, "  skip any matching %s\n", r.MustNotMatch)
	}
	helpers.MustFprintln(w)
}

// TestIDPattern is a regex for each component of a TestID. A pattern with fewer components
// than an ID only constrains the ID's leading components.
type TestIDPattern []*regexp.Regexp

func (p TestIDPattern) Match(id TestID, includeParents bool) bool {
	min := len(p)
	if min > len(id) {
		if !includeParents {
			return false
		}
		min = len(id)
	}
	for i := 0; i < min; i++ {
		if !p[i].MatchString(id[i]) {
			return false
		}
	}
	return true
}

func (p TestIDPattern) String() string {
	ss := make([]string, 0, len(p))
	for _, c := range p {
		ss = append(ss, c.String())
	}
	return strings.Join(ss, TestIDSeparator)
}

// ParseTestIDPattern parses components separated by ">", each of which is a regex. Spaces
// around the separator are ignored.
func ParseTestIDPattern(s string) (TestIDPattern, error) {
	parts := strings.Split(s, strings.TrimSpace(TestIDSeparator))
	ret := make(TestIDPattern, 0, len(parts))
	for _, part := range parts {
		rx, err := regexp.Compile(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid regex: %w", err)
		}
		ret = append(ret, rx)
	}
	return ret, nil
}

// ExactTestIDPattern returns a pattern that matches only the given ID and its descendants.
func ExactTestIDPattern(id TestID) TestIDPattern {
	ret := make(TestIDPattern, 0, len(id))
	for _, part := range id {
		ret = append(ret, regexp.MustCompile("^"+regexp.QuoteMeta(part)+"$"))
	}
	return ret
}

// TestIDPatternList is a set of alternative patterns. It implements pflag.Value so that a
// flag can be repeated.
type TestIDPatternList []TestIDPattern

func (l TestIDPatternList) String() string {
	ss := make([]string, 0, len(l))
	for _, p := range l {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (l *TestIDPatternList) Set(value string) error {
	p, err := ParseTestIDPattern(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func (l *TestIDPatternList) Type() string { return "pattern" }

func (l TestIDPatternList) IsDefined() bool {
	return len(l) != 0
}

func (l TestIDPatternList) AnyMatch(id TestID, includeParents bool) bool {
	for _, p := range l {
		if p.Match(id, includeParents) {
			return true
		}
	}
	return false
}
