package ctest

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/nirvanashop/shop-contract-tests/framework"
	"github.com/nirvanashop/shop-contract-tests/framework/helpers"

	"github.com/fatih/color"
)

var consoleCategoryColor = color.New(color.Bold)                   //nolint:gochecknoglobals
var consoleTestPassedColor = color.New(color.FgGreen)              //nolint:gochecknoglobals
var consoleTestErrorColor = color.New(color.FgYellow)              //nolint:gochecknoglobals
var consoleTestFailedColor = color.New(color.FgRed)                //nolint:gochecknoglobals
var consoleTestSkippedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
var consoleDebugOutputColor = color.New(color.Faint)               //nolint:gochecknoglobals

// TestLogger receives status information as tests run, and is given the final ledger when
// the run is over.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput)
	TestSkipped(id TestID, reason string)
	EndLog(ledger *Ledger) error
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                                        {}
func (n nullTestLogger) TestError(TestID, error)                                   {}
func (n nullTestLogger) TestFinished(TestID, TestResult, framework.CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                                {}
func (n nullTestLogger) EndLog(*Ledger) error                                      { return nil }

// MultiTestLogger passes everything on to each of its Loggers in order.
type MultiTestLogger struct {
	Loggers []TestLogger
}

func (m *MultiTestLogger) TestStarted(id TestID) {
	for _, l := range m.Loggers {
		l.TestStarted(id)
	}
}

func (m *MultiTestLogger) TestError(id TestID, err error) {
	for _, l := range m.Loggers {
		l.TestError(id, err)
	}
}

func (m *MultiTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	for _, l := range m.Loggers {
		l.TestFinished(id, result, debugOutput)
	}
}

func (m *MultiTestLogger) TestSkipped(id TestID, reason string) {
	for _, l := range m.Loggers {
		l.TestSkipped(id, reason)
	}
}

// EndLog calls EndLog on every logger even if some of them fail, and returns all of the
// errors.
func (m *MultiTestLogger) EndLog(ledger *Ledger) error {
	var errs []error
	for _, l := range m.Loggers {
		if err := l.EndLog(ledger); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ConsoleTestLogger prints one line per recorded test as the run progresses, with a header
// whenever a top-level scope starts, and prints the full report at the end. A category that is
// entered a second time gets a "(continued)" header.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	// Notes are printed at the end of the report.
	Notes []string
	// Output defaults to os.Stdout.
	Output io.Writer

	started map[string]bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	if len(id) == 1 {
		if c.started == nil {
			c.started = make(map[string]bool)
		}
		continued := helpers.IfElse(c.started[id[0]], " (continued)", "")
		c.started[id[0]] = true
		helpers.MustFprintln(c.out())
		_, _ = consoleCategoryColor.Fprintf(c.out(), "Testing %s%s\n", id[0], continued)
		helpers.MustFprintln(c.out(), strings.Repeat("-", 40))
	}
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = consoleTestErrorColor.Fprintf(c.out(), "    %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	failed := result.Outcome == Fail
	if failed {
		_, _ = consoleTestFailedColor.Fprintf(c.out(), "  ✗ %s: %s\n", displayName(id), result.Message)
	} else {
		_, _ = consoleTestPassedColor.Fprintf(c.out(), "  ✓ %s: %s\n", displayName(id), result.Message)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		_, _ = consoleDebugOutputColor.Fprintln(c.out(), debugOutput.ToString("    DEBUG "))
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		_, _ = consoleTestSkippedColor.Fprintf(c.out(), "  - %s: SKIPPED\n", displayName(id))
	} else {
		_, _ = consoleTestSkippedColor.Fprintf(c.out(), "  - %s: SKIPPED - %s\n", displayName(id), reason)
	}
}

func (c *ConsoleTestLogger) EndLog(ledger *Ledger) error {
	PrintReport(c.out(), ledger, c.Notes)
	return nil
}

// displayName is the test's ID without its category, which is already shown in the header.
func displayName(id TestID) string {
	if len(id) <= 1 {
		return id.String()
	}
	return id[1:].String()
}
