package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nirvanashop/shop-contract-tests/framework"
	"github.com/nirvanashop/shop-contract-tests/framework/helpers"
	"github.com/nirvanashop/shop-contract-tests/framework/opt"
)

// RequestIDHeader carries a unique ID for each request, so that a failed request can be found
// in the service's logs.
const RequestIDHeader = "X-Request-ID"

// maxLoggedBodyLength limits how much of each body is written to the debug log.
const maxLoggedBodyLength = 2000

// Response is what the service under test sent back for one request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

type requestConfig struct {
	headers http.Header
}

// RequestOption is an optional parameter for TargetHarness.Request.
type RequestOption helpers.ConfigOption[requestConfig]

// WithHeader adds a header to the request.
func WithHeader(name, value string) RequestOption {
	return helpers.ConfigOptionFunc[requestConfig](func(c *requestConfig) error {
		c.headers.Add(name, value)
		return nil
	})
}

// WithBearerToken adds an Authorization header with the given bearer token.
func WithBearerToken(token string) RequestOption {
	return WithHeader("Authorization", "Bearer "+token)
}

// Request sends one request to a path relative to the base URL. If body is defined, it is
// encoded as JSON. Every request has a JSON content type and a new request ID.
//
// Any response, whatever its status, is returned without an error. If no response was received
// at all, the error is a NetworkError.
func (h *TargetHarness) Request(
	method, path string,
	body opt.Maybe[interface{}],
	logger framework.Logger,
	options ...RequestOption,
) (Response, error) {
	if logger == nil {
		logger = h.logger
	}
	config := requestConfig{headers: make(http.Header)}
	if err := helpers.ApplyOptions(&config, options...); err != nil {
		return Response{}, err
	}

	url := h.URL(path)
	var bodyReader io.Reader
	if body.IsDefined() {
		data, err := json.Marshal(body.Value())
		if err != nil {
			return Response{}, fmt.Errorf("cannot encode request body for %s %s: %w", method, url, err)
		}
		bodyReader = bytes.NewReader(data)
		logger.Printf("Request body: %s", string(data))
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return Response{}, NetworkError{Method: method, URL: url, Err: err}
	}
	for name, values := range config.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := h.newRequestID()
	req.Header.Set(RequestIDHeader, requestID)
	logger.Printf("%s %s (request ID %s)", method, url, requestID)

	resp, err := h.client.Do(req)
	if err != nil {
		logger.Printf("Request failed: %s", err)
		return Response{RequestID: requestID}, NetworkError{Method: method, URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Printf("Reading response body failed: %s", err)
		return Response{RequestID: requestID}, NetworkError{Method: method, URL: url, Err: err}
	}
	logger.Printf("Response status %d, body: %s", resp.StatusCode, helpers.DescribeJSONBody(respBody, maxLoggedBodyLength))

	return Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		RequestID:  requestID,
	}, nil
}
