package expect

import (
	"errors"
	"testing"

	"github.com/nirvanashop/shop-contract-tests/framework/harness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusIs(t *testing.T) {
	x := Status.Is(401)
	assert.Equal(t, "401", x.String())
	assert.True(t, x.Matches(harness.Response{StatusCode: 401}))
	assert.False(t, x.Matches(harness.Response{StatusCode: 200}))
	assert.NoError(t, x.Check(harness.Response{StatusCode: 401}))
}

func TestStatusCheckFailure(t *testing.T) {
	err := Status.Is(401).Check(harness.Response{StatusCode: 200, Body: []byte(`{"success":true}`)})
	require.Error(t, err)
	assert.Equal(t, "Expected 401, got 200", err.Error())

	var se UnexpectedStatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 200, se.Actual)
	assert.Equal(t, `Expected 401, got 200 (response: {"success":true})`, se.WithResponse())
}

func TestStatusCheckFailureDescribesResponse(t *testing.T) {
	err := Status.Is(404).Check(harness.Response{StatusCode: 200, Body: []byte(" ok ")})

	var se UnexpectedStatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "expected: status equal to 404\nactual value was: HTTP 200: ok", se.Detail)
}
