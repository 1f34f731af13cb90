package matchers

import (
	"fmt"
	"testing"
)

type fakeResponse struct {
	StatusCode int
	Body       string
}

func statusCode() MatcherTransform {
	return Transform(
		"status code",
		func(value interface{}) interface{} { return value.(fakeResponse).StatusCode },
	)
}

func TestTransform(t *testing.T) {
	m := statusCode().Should(Equal(401))

	assertPasses(t, fakeResponse{StatusCode: 401}, m)
	assertFails(t, fakeResponse{StatusCode: 200, Body: "ok"}, m,
		"expected: status code equal to 401\nactual value was: {StatusCode:200 Body:ok}")
}

func TestTransformEnsureType(t *testing.T) {
	m := statusCode().EnsureInputValueType(fakeResponse{}).
		Should(Equal(401))

	assertPasses(t, fakeResponse{StatusCode: 401}, m)
	assertFails(t, "401", m, "expected: value of type matchers.fakeResponse, was string\nactual value was: 401")
}

func TestTransformInputValueDesc(t *testing.T) {
	describeResponse := func(value interface{}) string {
		return fmt.Sprintf("HTTP %d", value.(fakeResponse).StatusCode)
	}
	m := statusCode().WithInputValueDescription(describeResponse).
		Should(Equal(401))

	assertFails(t, fakeResponse{StatusCode: 500}, m,
		"expected: status code equal to 401\nactual value was: HTTP 500")
}
