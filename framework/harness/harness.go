package harness

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nirvanashop/shop-contract-tests/framework"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every request when no other timeout is configured.
const DefaultTimeout = 10 * time.Second

// TargetHarness is the main component that manages communication with the service under test.
//
// It always talks to a single service, identified by a base URL that every request path is
// appended to. Requests are sent one at a time, each bounded by the harness's timeout, and are
// never retried.
//
// It contains no domain-specific test logic, but only provides a general mechanism for test suites
// to build on.
type TargetHarness struct {
	baseURL      string
	client       *http.Client
	logger       framework.Logger
	newRequestID func() string
}

// NewTargetHarness creates a TargetHarness. The base URL must be an absolute http or https URL;
// a trailing slash is ignored. A zero timeout means DefaultTimeout.
func NewTargetHarness(
	baseURL string,
	timeout time.Duration,
	debugLogger framework.Logger,
) (*TargetHarness, error) {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", baseURL)
	}
	return &TargetHarness{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		client:       &http.Client{Timeout: timeout},
		logger:       debugLogger,
		newRequestID: func() string { return uuid.New().String() },
	}, nil
}

// BaseURL returns the base URL of the service under test, without a trailing slash.
func (h *TargetHarness) BaseURL() string {
	return h.baseURL
}

// Timeout returns the limit on each request.
func (h *TargetHarness) Timeout() time.Duration {
	return h.client.Timeout
}

// URL returns the absolute URL for a path relative to the base URL.
func (h *TargetHarness) URL(path string) string {
	if path == "" || strings.HasPrefix(path, "/") {
		return h.baseURL + path
	}
	return h.baseURL + "/" + path
}
