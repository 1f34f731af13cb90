package shoptests

import (
	"errors"

	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/harness"
	"github.com/nirvanashop/shop-contract-tests/framework/opt"
	"github.com/nirvanashop/shop-contract-tests/shoptests/expect"
)

// ProbeSpec describes one request and the status it should get.
type ProbeSpec struct {
	Method string
	Path   string
	Body   opt.Maybe[interface{}]
	Expect expect.StatusExpectation

	// PassMessage is the result message if the status is as expected.
	PassMessage string

	Options []harness.RequestOption
}

// send issues the request. The error is a harness.NetworkError if there was no response, or an
// expect.UnexpectedStatusError if the status was wrong.
func send(t *ctest.T, spec ProbeSpec) (harness.Response, error) {
	resp, err := requireContext(t).harness.Request(spec.Method, spec.Path, spec.Body, t.DebugLogger(), spec.Options...)
	if err != nil {
		return resp, err
	}
	return resp, spec.Expect.Check(resp)
}

// probe issues the request and fails the current test if there was no response or the status
// was wrong. It returns the response and whether the status was as expected.
func probe(t *ctest.T, spec ProbeSpec) (harness.Response, bool) {
	resp, err := send(t, spec)
	if err != nil {
		var statusErr expect.UnexpectedStatusError
		if errors.As(err, &statusErr) {
			t.Debug("%s", statusErr.Detail)
		}
		t.FailWithError(err)
		return resp, false
	}
	if spec.PassMessage != "" {
		t.Pass(spec.PassMessage)
	}
	return resp, true
}

func runProbe(t *ctest.T, name string, spec ProbeSpec) {
	t.Run(name, func(t *ctest.T) {
		_, _ = probe(t, spec)
	})
}

func unauthorizedProbe(method, path string, body opt.Maybe[interface{}]) ProbeSpec {
	return ProbeSpec{
		Method:      method,
		Path:        path,
		Body:        body,
		Expect:      expect.Status.Is(401),
		PassMessage: rejectedUnauthorizedMessage,
	}
}
