package ctest

import (
	"golang.org/x/exp/slices"
)

// Ledger accumulates the TestResults of one run, grouped by category in the order that each
// category first appeared, along with running counts for each Outcome.
//
// A Ledger is owned by a single run and is not safe for concurrent use.
type Ledger struct {
	categories []string
	byCategory map[string][]TestResult
	all        []TestResult
	passed     int
	failed     int
	skipped    int
}

func NewLedger() *Ledger {
	return &Ledger{byCategory: make(map[string][]TestResult)}
}

// Record appends a result under the given category and increments the counter for its
// outcome.
func (l *Ledger) Record(category string, result TestResult) {
	if l.byCategory == nil {
		l.byCategory = make(map[string][]TestResult)
	}
	if !slices.Contains(l.categories, category) {
		l.categories = append(l.categories, category)
	}
	l.byCategory[category] = append(l.byCategory[category], result)
	l.all = append(l.all, result)
	switch result.Outcome {
	case Pass:
		l.passed++
	case Fail:
		l.failed++
	case Skip:
		l.skipped++
	}
}

// Categories returns the category names in first-appearance order.
func (l *Ledger) Categories() []string {
	return slices.Clone(l.categories)
}

// Results returns the results recorded under one category, in the order they were recorded.
func (l *Ledger) Results(category string) []TestResult {
	return slices.Clone(l.byCategory[category])
}

// All returns every recorded result in the order they were recorded.
func (l *Ledger) All() []TestResult {
	return slices.Clone(l.all)
}

func (l *Ledger) Passed() int  { return l.passed }
func (l *Ledger) Failed() int  { return l.failed }
func (l *Ledger) Skipped() int { return l.skipped }
func (l *Ledger) Total() int   { return len(l.all) }

// OK is true if nothing failed.
func (l *Ledger) OK() bool { return l.failed == 0 }

// Failures returns the failed results in the order they were recorded.
func (l *Ledger) Failures() []TestResult {
	var ret []TestResult
	for _, r := range l.all {
		if r.Outcome == Fail {
			ret = append(ret, r)
		}
	}
	return ret
}
