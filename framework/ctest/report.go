package ctest

import (
	"io"
	"strings"

	"github.com/nirvanashop/shop-contract-tests/framework/helpers"

	"github.com/jedib0t/go-pretty/v6/table"
)

var reportRule = strings.Repeat("=", 60) //nolint:gochecknoglobals

// PrintReport renders the ledger: the counts for each outcome, a table of every result
// grouped by category, a verdict listing any failures, and then any notes.
func PrintReport(w io.Writer, ledger *Ledger, notes []string) {
	helpers.MustFprintln(w)
	helpers.MustFprintln(w, reportRule)
	helpers.MustFprintln(w, "TEST SUMMARY")
	helpers.MustFprintln(w, reportRule)
	helpers.MustFprintf(w, "Passed:  %d\n", ledger.Passed())
	helpers.MustFprintf(w, "Failed:  %d\n", ledger.Failed())
	helpers.MustFprintf(w, "Skipped: %d\n", ledger.Skipped())

	if ledger.Total() != 0 {
		helpers.MustFprintln(w)
		helpers.MustFprintln(w, "DETAILED RESULTS")
		helpers.MustFprintln(w, detailsTable(ledger).Render())
	}

	helpers.MustFprintln(w)
	helpers.MustFprintln(w, reportRule)
	if ledger.OK() {
		_, _ = consoleTestPassedColor.Fprintln(w, "ALL TESTS PASSED")
	} else {
		failures := ledger.Failures()
		_, _ = consoleTestFailedColor.Fprintf(w, "FAILED TESTS (%d):\n", len(failures))
		for _, f := range failures {
			_, _ = consoleTestFailedColor.Fprintf(w, "  * %s: %s\n", f.ID, f.Message)
		}
	}

	if len(notes) != 0 {
		helpers.MustFprintln(w)
		helpers.MustFprintln(w, "IMPORTANT NOTES:")
		for _, n := range notes {
			helpers.MustFprintf(w, "- %s\n", n)
		}
	}
}

func detailsTable(ledger *Ledger) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"CATEGORY", "TEST", "RESULT", "MESSAGE"})
	for i, category := range ledger.Categories() {
		if i > 0 {
			t.AppendSeparator()
		}
		for j, r := range ledger.Results(category) {
			appendResultRow(t, helpers.IfElse(j == 0, category, ""), displayName(r.ID), r)
		}
	}
	return t
}

func appendResultRow(t table.Writer, category, name string, r TestResult) {
	var outcome string
	switch r.Outcome {
	case Pass:
		outcome = consoleTestPassedColor.Sprint("PASS")
	case Fail:
		outcome = consoleTestFailedColor.Sprint("FAIL")
	default:
		outcome = consoleTestSkippedColor.Sprint("SKIP")
	}
	t.AppendRow(table.Row{category, name, outcome, r.Message})
}
