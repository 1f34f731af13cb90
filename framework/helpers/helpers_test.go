package helpers

import (
	"errors"
	"strings"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct {
	name string
}

func withName(name string) ConfigOptionFunc[named] {
	return func(n *named) error {
		n.name = name
		return nil
	}
}

func TestApplyOptions(t *testing.T) {
	var n named
	require.NoError(t, ApplyOptions(&n, withName("a"), withName("b")))
	assert.Equal(t, "b", n.name)

	fail := ConfigOptionFunc[named](func(*named) error { return errors.New("no") })
	var n2 named
	assert.EqualError(t, ApplyOptions(&n2, fail, withName("c")), "no")
	assert.Equal(t, "", n2.name)
}

func TestIfElse(t *testing.T) {
	assert.Equal(t, 3, IfElse(true, 3, 4))
	assert.Equal(t, 4, IfElse(false, 3, 4))
	assert.Equal(t, "a", IfElse(true, "a", "b"))
	assert.Equal(t, "b", IfElse(false, "a", "b"))
}

func TestCanonicalizedJSONString(t *testing.T) {
	v := ldvalue.Parse([]byte(`{"b": [2, {"z": true, "a": null}], "a": "x"}`))
	assert.Equal(t, `{"a":"x","b":[2,{"a":null,"z":true}]}`, CanonicalizedJSONString(v))
}

func TestCanonicalizedJSONStringEscapesKeys(t *testing.T) {
	v := ldvalue.Parse([]byte(`{"we\"ird":1,"back\\slash":2}`))
	s := CanonicalizedJSONString(v)
	assert.Equal(t, `{"back\\slash":2,"we\"ird":1}`, s)
	assert.True(t, v.Equal(ldvalue.Parse([]byte(s))), s)
}

func TestDescribeBody(t *testing.T) {
	t.Run("JSON is shown as sent", func(t *testing.T) {
		assert.Equal(t, `{"success": false, "error": "nope"}`,
			DescribeBody([]byte(` {"success": false, "error": "nope"} `), 0))
		assert.Equal(t, `{"success":true,"we\"ird":1}`,
			DescribeBody([]byte(`{"success":true,"we\"ird":1}`), 0))
	})

	t.Run("text is shown as is", func(t *testing.T) {
		assert.Equal(t, "Internal Server Error", DescribeBody([]byte("Internal Server Error\n"), 0))
	})

	t.Run("empty body", func(t *testing.T) {
		assert.Equal(t, "", DescribeBody(nil, 10))
	})

	t.Run("long body is truncated", func(t *testing.T) {
		assert.Equal(t, "aaaaa...", DescribeBody([]byte(strings.Repeat("a", 20)), 5))
	})
}

func TestDescribeJSONBody(t *testing.T) {
	assert.Equal(t, `{"error":"nope","success":false}`,
		DescribeJSONBody([]byte(` {"success": false, "error": "nope"} `), 0))
	assert.Equal(t, "Bad Gateway", DescribeJSONBody([]byte("Bad Gateway\n"), 0))
	assert.Equal(t, `{"a":...`, DescribeJSONBody([]byte(`{"a":1}`), 5))
}
