package ctest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nirvanashop/shop-contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJUnitTestLoggerWritesOneSuitePerCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junit.xml")
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("admin"))
	var out bytes.Buffer
	j := NewJUnitTestLogger(path, "http://shop/api", filters, &out)

	ledger := Run(TestConfiguration{TestLogger: j}, func(ct *T) {
		ct.Run("public endpoints", func(ct0 *T) {
			ct0.Run("GET /api/products", func(ct1 *T) {
				ct1.Pass("Retrieved 2 products successfully")
			})
			ct0.Run("Invalid route handling", func(ct1 *T) {
				ct1.Debug("GET http://shop/api/invalid-route")
				ct1.Errorf("Expected 404, got 200")
			})
		})
		ct.Run("auth endpoints", func(ct0 *T) {
			ct0.Run("Cart CRUD operations", func(ct1 *T) {
				ct1.SkipWithReason("No products available")
			})
		})
	})
	require.NoError(t, j.EndLog(ledger))
	assert.Equal(t, "Writing JUnit data to "+path+"\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc jUnitXMLDocument
	require.NoError(t, xml.Unmarshal(data, &doc))

	require.Len(t, doc.Suites, 2)
	public, auth := doc.Suites[0], doc.Suites[1]

	assert.Equal(t, "shop contract tests: public endpoints", public.Name)
	assert.Equal(t, 2, public.Tests)
	assert.Equal(t, 1, public.Failures)
	assert.Contains(t, public.Properties, jUnitXMLProperty{Name: "tests.target.url", Value: "http://shop/api"})
	assert.Contains(t, public.Properties, jUnitXMLProperty{Name: "tests.filter.mustNotMatch", Value: `"admin"`})
	require.Len(t, public.TestCases, 2)
	assert.Equal(t, "GET /api/products", public.TestCases[0].Name)
	assert.Nil(t, public.TestCases[0].Failure)
	assert.Equal(t, "Retrieved 2 products successfully", public.TestCases[0].SystemOut)
	assert.Equal(t, "Invalid route handling", public.TestCases[1].Name)
	require.NotNil(t, public.TestCases[1].Failure)
	assert.Equal(t, "Expected 404, got 200", public.TestCases[1].Failure.Message)
	assert.Contains(t, public.TestCases[1].Failure.Contents, "GET http://shop/api/invalid-route")

	assert.Equal(t, "shop contract tests: auth endpoints", auth.Name)
	assert.Equal(t, 1, auth.Tests)
	assert.Equal(t, 1, auth.Skipped)
	require.Len(t, auth.TestCases, 1)
	require.NotNil(t, auth.TestCases[0].SkipMessage)
	assert.Equal(t, "No products available", auth.TestCases[0].SkipMessage.Message)
}

func TestJUnitFailureMessageIncludesStacktrace(t *testing.T) {
	errs := []error{
		ErrorWithStacktrace{
			Message:    "Expected 401, got 200",
			Stacktrace: []StacktraceInfo{{FileName: "probe.go", Package: rootPackageName() + "/shoptests", Function: "probe", Line: 12}},
		},
		errors.New("second"),
	}
	assert.Equal(t, "Expected 401, got 200\n  Stacktrace:\n    shoptests.probe (probe.go:12)\nsecond",
		jUnitFailureMessage(errs))
}

func TestJUnitTestLoggerReportsWriteError(t *testing.T) {
	j := NewJUnitTestLogger(filepath.Join(t.TempDir(), "missing-dir", "junit.xml"), "", RegexFilters{}, io.Discard)
	j.TestFinished(TestID{"a", "b"}, TestResult{}, framework.CapturedOutput{})
	assert.Error(t, j.EndLog(NewLedger()))
}
