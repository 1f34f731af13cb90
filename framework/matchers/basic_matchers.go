package matchers

import (
	"fmt"
	"reflect"
	"regexp"
)

// Equal is a matcher that tests whether the input value matches the expected value according
// to reflect.DeepEqual.
func Equal(expectedValue interface{}) Matcher {
	return New(
		func(value interface{}) bool {
			return reflect.DeepEqual(value, expectedValue)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("equal to %s", desc(expectedValue))
		},
	)
}

// MatchesPattern is a matcher for string or []byte values that tests whether the regular
// expression finds a match anywhere in the value.
//
//	matchers.MatchesPattern(regexp.MustCompile(`(?i)does not exist`)).Test("Does Not Exist") // pass
func MatchesPattern(pattern *regexp.Regexp) Matcher {
	return New(
		func(value interface{}) bool {
			switch v := value.(type) {
			case string:
				return pattern.MatchString(v)
			case []byte:
				return pattern.Match(v)
			default:
				return false
			}
		},
		func(value interface{}, desc DescribeValueFunc) string {
			switch value.(type) {
			case string, []byte:
				return fmt.Sprintf("matching /%s/", pattern)
			default:
				return fmt.Sprintf("string matching /%s/, was %T", pattern, value)
			}
		},
	).WithValueDescription(func(value interface{}) string {
		if b, ok := value.([]byte); ok {
			return string(b)
		}
		return DefaultDescription(value)
	})
}
