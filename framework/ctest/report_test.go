package ctest

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func makeMixedLedger() *Ledger {
	l := NewLedger()
	l.Record("public endpoints", TestResult{
		ID:      TestID{"public endpoints", "GET /api/products"},
		Outcome: Pass,
		Message: "Retrieved 2 products successfully",
	})
	l.Record("public endpoints", TestResult{
		ID:      TestID{"public endpoints", "Invalid route handling"},
		Outcome: Fail,
		Message: "Expected 404, got 200",
	})
	l.Record("auth endpoints", TestResult{
		ID:      TestID{"auth endpoints", "Cart CRUD operations"},
		Outcome: Skip,
		Message: "No products available",
	})
	return l
}

func TestPrintReport(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata"))

	t.Run("with failures", func(t *testing.T) {
		var buf bytes.Buffer
		PrintReport(&buf, makeMixedLedger(), []string{
			"Authentication tests verify that endpoints reject unauthorized requests",
		})
		g.Assert(t, "report_with_failures", buf.Bytes())
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		PrintReport(&buf, NewLedger(), nil)
		g.Assert(t, "report_empty", buf.Bytes())
	})
}
