package ctest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func result(outcome Outcome, id ...string) TestResult {
	return TestResult{ID: TestID(id), Outcome: outcome}
}

func TestEmptyLedger(t *testing.T) {
	l := NewLedger()
	assert.True(t, l.OK())
	assert.Equal(t, 0, l.Total())
	assert.Len(t, l.Categories(), 0)
	assert.Len(t, l.Failures(), 0)
}

func TestZeroValueLedgerCanRecord(t *testing.T) {
	var l Ledger
	l.Record("a", result(Pass, "a", "x"))
	assert.Equal(t, 1, l.Passed())
}

func TestLedgerCounts(t *testing.T) {
	l := NewLedger()
	l.Record("public", result(Pass, "public", "a"))
	l.Record("public", result(Fail, "public", "b"))
	l.Record("auth", result(Skip, "auth", "c"))
	l.Record("auth", result(Pass, "auth", "d"))

	assert.Equal(t, 2, l.Passed())
	assert.Equal(t, 1, l.Failed())
	assert.Equal(t, 1, l.Skipped())
	assert.Equal(t, 4, l.Total())
	assert.Equal(t, l.Total(), l.Passed()+l.Failed()+l.Skipped())
	assert.False(t, l.OK())
	assert.Equal(t, []TestResult{result(Fail, "public", "b")}, l.Failures())
}

func TestLedgerCategoriesKeepFirstAppearanceOrder(t *testing.T) {
	l := NewLedger()
	l.Record("public", result(Pass, "public", "a"))
	l.Record("auth", result(Pass, "auth", "b"))
	l.Record("admin", result(Pass, "admin", "c"))
	l.Record("auth", result(Pass, "auth", "d"))

	assert.Equal(t, []string{"public", "auth", "admin"}, l.Categories())
	assert.Equal(t, []TestResult{result(Pass, "auth", "b"), result(Pass, "auth", "d")}, l.Results("auth"))
	assert.Len(t, l.Results("nonexistent"), 0)

	all := l.All()
	assert.Len(t, all, 4)
	assert.Equal(t, TestID{"auth", "d"}, all[3].ID)
}

func TestLedgerAccessorsReturnCopies(t *testing.T) {
	l := NewLedger()
	l.Record("public", result(Pass, "public", "a"))

	l.Categories()[0] = "changed"
	l.Results("public")[0].Message = "changed"
	assert.Equal(t, []string{"public"}, l.Categories())
	assert.Equal(t, "", l.Results("public")[0].Message)
}
