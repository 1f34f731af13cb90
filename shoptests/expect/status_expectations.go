// Package expect contains expectations about the responses of the service under test.
package expect

import (
	"fmt"
	"strconv"

	"github.com/nirvanashop/shop-contract-tests/framework/harness"
	"github.com/nirvanashop/shop-contract-tests/framework/helpers"
	"github.com/nirvanashop/shop-contract-tests/framework/matchers"
)

// maxBodyInMessage limits how much of a response body goes into a failure message.
const maxBodyInMessage = 500

// Status is the entry point for constructing expectations about HTTP status codes.
//
//	err := expect.Status.Is(401).Check(resp)
var Status StatusExpectationFactory //nolint:gochecknoglobals

type StatusExpectationFactory struct{}

// StatusExpectation is a predicate on the status code of a response.
type StatusExpectation struct {
	code    int
	matcher matchers.Matcher
}

// UnexpectedStatusError means the service responded, but not with an expected status.
type UnexpectedStatusError struct {
	Expected string
	Actual   int
	Body     []byte

	// Detail is the full matcher description of the response, for debug output.
	Detail string
}

func (e UnexpectedStatusError) Error() string {
	return fmt.Sprintf("Expected %s, got %d", e.Expected, e.Actual)
}

// WithResponse is the error message followed by a description of the response body.
func (e UnexpectedStatusError) WithResponse() string {
	return fmt.Sprintf("%s (response: %s)", e.Error(), helpers.DescribeBody(e.Body, maxBodyInMessage))
}

func responseStatus() matchers.MatcherTransform {
	return matchers.Transform("status", func(value interface{}) interface{} {
		return value.(harness.Response).StatusCode
	}).EnsureInputValueType(harness.Response{}).
		WithInputValueDescription(func(value interface{}) string {
			resp := value.(harness.Response)
			return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, helpers.DescribeBody(resp.Body, maxBodyInMessage))
		})
}

// Is expects exactly the given status.
func (f StatusExpectationFactory) Is(code int) StatusExpectation {
	return StatusExpectation{code: code, matcher: responseStatus().Should(matchers.Equal(code))}
}

// Matches returns true if the response's status satisfies the expectation.
func (x StatusExpectation) Matches(resp harness.Response) bool {
	pass, _ := x.matcher.Test(resp)
	return pass
}

// Check returns an UnexpectedStatusError if the response's status does not satisfy the
// expectation.
func (x StatusExpectation) Check(resp harness.Response) error {
	pass, desc := x.matcher.Test(resp)
	if pass {
		return nil
	}
	return UnexpectedStatusError{Expected: x.String(), Actual: resp.StatusCode, Body: resp.Body, Detail: desc}
}

// String describes the expected status, for instance "401".
func (x StatusExpectation) String() string {
	return strconv.Itoa(x.code)
}
