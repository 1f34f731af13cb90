package ctest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirvanashop/shop-contract-tests/framework/ctest/internal"
)

func TestStacktrace(t *testing.T) {
	_ = Run(TestConfiguration{}, func(ct *T) {
		ct.Run("without filtering", func(ct *T) {
			stack := getStacktrace(true, nil)
			assert.Greater(t, len(stack), 1)
			assert.Equal(t, currentPackageName(), stack[0].Package)
			assert.Contains(t, stack[0].Function, "TestStacktrace.")
			assert.Equal(t, currentPackageName(), stack[1].Package)
			assert.Equal(t, "(*T).run", stack[1].Function)
		})

		ct.Run("auto-filtering removes harness methods", func(ct *T) {
			internal.RunAction(func() {
				stack := getStacktrace(false, nil)
				assert.Len(t, stack, 1)
				// Frames from this package (including this test) and everything below ctest.Run are
				// stripped out, leaving only internal.RunAction.
				assert.Equal(t, currentPackageName()+"/internal", stack[0].Package)
				assert.Equal(t, "RunAction", stack[0].Function)
			})
		})

		ct.Run("filter out designated helpers", func(ct *T) {
			helperFunc1(func() {
				helperFunc2(func() {
					stack := getStacktrace(true, []string{currentPackageName() + ".helperFunc2"})
					foundFunc1 := false
					for _, s := range stack {
						if s.Package == currentPackageName() && s.Function == "helperFunc1" {
							foundFunc1 = true
						} else if s.Package == currentPackageName() && s.Function == "helperFunc2" {
							require.Fail(t, "helperFunc2 should not have been in stacktrace", "stacktrace: %+v", stack)
						}
					}
					assert.True(t, foundFunc1, "helperFunc1 should have been in stacktrace but wasn't", "stacktrace: %+v", stack)
				})
			})
		})
	})
}

func helperFunc1(action func()) {
	action()
}

func helperFunc2(action func()) {
	action()
}

func TestTransformError(t *testing.T) {
	t.Run("plain message without stacktrace", func(t *testing.T) {
		err := transformError(errors.New("Expected 401, got 200"), nil)
		assert.Equal(t, errors.New("Expected 401, got 200"), err)
	})

	t.Run("testify trace is stripped", func(t *testing.T) {
		testifyMessage := "\n\tError Trace:\tshop_test.go:12\n\tError:      \tShould be true\n"
		err := transformError(errors.New(testifyMessage), nil)
		assert.Equal(t, "Should be true", err.Error())
	})

	t.Run("stacktrace is attached", func(t *testing.T) {
		stack := []StacktraceInfo{{FileName: "probe.go", Package: rootPackageName() + "/shoptests", Function: "probe", Line: 40}}
		err := transformError(errors.New("bad"), stack)
		var ews ErrorWithStacktrace
		require.True(t, errors.As(err, &ews))
		assert.Equal(t, "bad", ews.Error())
		assert.Equal(t, "shoptests.probe (probe.go:40)", ews.Stacktrace[0].String())
	})
}
