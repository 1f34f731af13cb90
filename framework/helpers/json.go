package helpers

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// CanonicalizedJSONString reformats a JSON value so that object properties are alphabetized,
// making it easier for a human reader to find a property.
func CanonicalizedJSONString(value ldvalue.Value) string {
	switch value.Type() {
	case ldvalue.ArrayType:
		items := make([]string, 0, value.Count())
		for i := 0; i < value.Count(); i++ {
			items = append(items, CanonicalizedJSONString(value.GetByIndex(i)))
		}
		return "[" + strings.Join(items, ",") + "]"
	case ldvalue.ObjectType:
		keys := value.Keys(nil)
		sort.Strings(keys)
		items := make([]string, 0, len(keys))
		for _, k := range keys {
			items = append(items, ldvalue.String(k).JSONString()+":"+CanonicalizedJSONString(value.GetByKey(k)))
		}
		return "{" + strings.Join(items, ",") + "}"
	default:
		return value.JSONString()
	}
}

// DescribeBody renders an HTTP response body for a failure message: the original text with
// surrounding whitespace removed, cut off at maxLength characters.
func DescribeBody(body []byte, maxLength int) string {
	return truncate(strings.TrimSpace(string(body)), maxLength)
}

// DescribeJSONBody is like DescribeBody, except that a body that parses as JSON is
// canonicalized. It is meant for debug output, where comparing bodies matters more than
// seeing the exact bytes.
func DescribeJSONBody(body []byte, maxLength int) string {
	trimmed := strings.TrimSpace(string(body))
	if parsed := ldvalue.Parse([]byte(trimmed)); trimmed != "" && (!parsed.IsNull() || trimmed == "null") {
		return truncate(CanonicalizedJSONString(parsed), maxLength)
	}
	return truncate(trimmed, maxLength)
}

func truncate(s string, maxLength int) string {
	if maxLength > 0 && utf8.RuneCountInString(s) > maxLength {
		return string([]rune(s)[:maxLength]) + "..."
	}
	return s
}
