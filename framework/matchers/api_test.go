package matchers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type decoratedString string

func (s decoratedString) String() string { return decorate(string(s)) }

func decorate(value interface{}) string { return fmt.Sprintf("Hi, I'm '%s'", value.(string)) }

func assertPasses(t *testing.T, value interface{}, m Matcher) {
	pass, desc := m.Test(value)
	assert.True(t, pass)
	assert.Equal(t, "", desc)
}

func assertFails(t *testing.T, value interface{}, m Matcher, expectedDesc string) {
	pass, desc := m.Test(value)
	assert.False(t, pass)
	assert.Equal(t, expectedDesc, desc)
}

func TestSimpleMatcher(t *testing.T) {
	m := New(
		func(value interface{}) bool { return value == "good" },
		func(interface{}, DescribeValueFunc) string { return "should be good" },
	)
	assertPasses(t, "good", m)
	assertFails(t, "bad", m, "expected: should be good\nactual value was: bad")
}

func TestMatcherValueDescriptionUsesStringer(t *testing.T) {
	m := New(
		func(value interface{}) bool { return value == decoratedString("good") },
		func(interface{}, DescribeValueFunc) string { return "should be good" },
	)
	assertFails(t, decoratedString("bad"), m,
		fmt.Sprintf("expected: should be good\nactual value was: %s", decorate("bad")))
}

func TestEnsureType(t *testing.T) {
	m := New(
		func(value interface{}) bool { return value == "good" },
		func(interface{}, DescribeValueFunc) string { return "should be good" },
	)
	assertPasses(t, "good", m)
	assertFails(t, 3, m, "expected: should be good\nactual value was: 3")

	m1 := m.EnsureType("example string")
	assertPasses(t, "good", m1)
	assertFails(t, "bad", m1, "expected: should be good\nactual value was: bad")
	assertFails(t, 3, m1, "expected: value of type string, was int\nactual value was: 3")

	m2 := m.EnsureType(nil) // no-op
	assertPasses(t, "good", m2)
	assertFails(t, 3, m2, "expected: should be good\nactual value was: 3")
}

func TestWithValueDescription(t *testing.T) {
	m := New(
		func(value interface{}) bool { return value == "good" },
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("should be %s", desc("good"))
		},
	).WithValueDescription(decorate)

	assertPasses(t, "good", m)
	assertFails(t, "bad", m,
		fmt.Sprintf("expected: should be %s\nactual value was: %s", decorate("good"), decorate("bad")))
}
