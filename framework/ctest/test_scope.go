package ctest

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/nirvanashop/shop-contract-tests/framework"
)

const filterSkipReason = "excluded by filter parameters"

type environment struct {
	config TestConfiguration
	ledger *Ledger
}

// T represents a test scope. It is very similar to Go's testing.T type.
//
// A scope that runs no subtests is a leaf and is always recorded in the Ledger. A scope that
// does run subtests is only a grouping; it is recorded only if it fails on its own account.
// A scope that is skipped before it runs any subtests is recorded as a single skip.
type T struct {
	env         *environment
	id          TestID
	debugLogger framework.CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	passMessage string
	hasChildren bool
	cleanups    []func()
	errors      []error
	helperFns   []string
}

// TestConfiguration contains options for the entire test run.
type TestConfiguration struct {
	// Filter is an optional test selector. Scopes it rejects are recorded as skipped.
	Filter Filter

	// TestLogger receives status information about each test.
	TestLogger TestLogger

	// Context is an optional value of any type defined by the application which can be accessed from tests.
	Context interface{}
}

// Run starts a top-level test scope and returns the ledger of everything that was recorded
// within it. The top-level scope itself is never recorded.
func Run(
	config TestConfiguration,
	action func(*T),
) *Ledger {
	if config.TestLogger == nil {
		config.TestLogger = nullTestLogger{}
	}
	env := &environment{
		config: config,
		ledger: NewLedger(),
	}
	t := &T{env: env}
	t.run(action)
	return env.ledger
}

func (t *T) run(action func(*T)) (result TestResult) {
	result.ID = t.id
	defer func() {
		if r := recover(); r != nil && !t.skipped {
			t.failed = true
			var addError error
			if _, ok := r.(*T); ok {
				if len(t.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v", r)
				t.debugLogger.Printf("panic stacktrace:\n%s", debug.Stack())
			}
			if addError != nil {
				t.errors = append(t.errors, addError)
				t.env.config.TestLogger.TestError(t.id, addError)
			}
		}
		for i := len(t.cleanups) - 1; i >= 0; i-- {
			t.cleanups[i]()
		}
		result.Errors = t.errors
		switch {
		case t.failed:
			result.Outcome = Fail
			result.Message = errorsMessage(t.errors)
		case t.skipped:
			result.Outcome = Skip
			result.Message = t.skipReason
		default:
			result.Outcome = Pass
			result.Message = t.passMessage
		}
	}()

	action(t)
	return result
}

// ID returns the full name of the current test.
func (t *T) ID() TestID {
	return t.id
}

// Run runs a subtest in its own scope.
//
// This is equivalent to Go's testing.T.Run.
func (t *T) Run(name string, action func(*T)) {
	id := t.id.Plus(name)
	t.hasChildren = true

	t.env.config.TestLogger.TestStarted(id)
	if t.env.config.Filter != nil && !t.env.config.Filter.Match(id) {
		t.env.ledger.Record(id.Category(), TestResult{ID: id, Outcome: Skip, Message: filterSkipReason})
		t.env.config.TestLogger.TestSkipped(id, filterSkipReason)
		return
	}
	c1 := &T{
		id:  id,
		env: t.env,
	}
	t.debugLogger.AddChildLogger(&c1.debugLogger) // see comments on t.DebugLogger()
	result := c1.run(action)
	t.debugLogger.RemoveChildLogger(&c1.debugLogger)

	if c1.hasChildren && result.Outcome != Fail {
		return
	}
	t.env.ledger.Record(id.Category(), result)
	if result.Outcome == Skip {
		t.env.config.TestLogger.TestSkipped(id, result.Message)
	} else {
		t.env.config.TestLogger.TestFinished(id, result, c1.debugLogger.Output())
	}
}

// Pass sets the message that describes this scope's result if it finishes without failing or
// being skipped. It does not end the scope.
func (t *T) Pass(message string) {
	t.passMessage = message
}

// Errorf reports a test failure. It is equivalent to Go's testing.T.Errorf. It does not cause the test
// to terminate, but adds the failure message to the output and marks the test as failed.
//
// It is also part of this type's implementation of assert.TestingT, allowing it to be called from
// assertion helpers.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	err := fmt.Errorf(format, args...)

	stacktrace := getStacktrace(false, t.helperFns)
	err = transformError(err, stacktrace)

	t.errors = append(t.errors, err)
	t.env.config.TestLogger.TestError(t.id, err)
}

// FailWithError reports an error value as a test failure, keeping the original error in the result.
// Like Errorf, it does not terminate the test.
func (t *T) FailWithError(err error) {
	t.failed = true
	t.errors = append(t.errors, err)
	t.env.config.TestLogger.TestError(t.id, err)
}

// FailNow causes the test to immediately terminate and be marked as failed.
func (t *T) FailNow() {
	panic(t)
}

// Skip causes the test to immediately terminate and be marked as skipped.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

// SkipWithReason is equivalent to Skip but provides a message.
func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Debug writes a message to the output for this test scope.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger instance for writing output for this test scope.
//
// The output that is captured for a test will be passed to TestLogger.TestFinished at the end of
// the test. The test runner can choose whether to display this or not based on command-line options.
//
// When a test has subtests (created with t.Run), the logger for a subtest starts out with a copy of
// any output that was already logged for the parent test. During the lifetime of the subtest, any
// further output that is sent to the parent test's logger will go to the child test's logger
// instead.
func (t *T) DebugLogger() framework.Logger {
	return &t.debugLogger
}

// Defer schedules a cleanup function which is guaranteed to be called when this test scope
// exits for any reason. Unlike a Go defer statement, Defer can be used from within helper
// functions.
func (t *T) Defer(cleanupFn func()) {
	t.cleanups = append(t.cleanups, cleanupFn)
}

// Context returns the application-defined context value, if any, that was specified in the
// TestConfiguration.
func (t *T) Context() interface{} {
	return t.env.config.Context
}

// Helper marks the function that calls it as a test helper that shouldn't appear in stacktraces.
// Equivalent to Go's testing.T.Helper().
func (t *T) Helper() {
	pc, _, _, ok := runtime.Caller(1) // 0 is Helper() itself, 1 is who called it
	if !ok {
		return
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return
	}
	t.helperFns = append(t.helperFns, f.Name())
}
