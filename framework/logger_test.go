package framework

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerRecordsMessages(t *testing.T) {
	var l CapturingLogger
	l.Println("a", "b")
	l.Printf("c=%d", 3)

	out := l.Output()
	require.Len(t, out, 2)
	assert.Equal(t, "a b", out[0].Message)
	assert.Equal(t, "c=3", out[1].Message)
}

func TestCapturingLoggerChildInheritsAndReceivesParentOutput(t *testing.T) {
	var parent, child CapturingLogger
	parent.Printf("before")
	parent.AddChildLogger(&child)
	parent.Printf("during")
	child.Printf("own")
	parent.RemoveChildLogger(&child)
	parent.Printf("after")

	var childMessages []string
	for _, m := range child.Output() {
		childMessages = append(childMessages, m.Message)
	}
	assert.Equal(t, []string{"before", "during", "own"}, childMessages)

	var parentMessages []string
	for _, m := range parent.Output() {
		parentMessages = append(parentMessages, m.Message)
	}
	assert.Equal(t, []string{"before", "after"}, parentMessages)
}

func TestCapturedOutputToString(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)
	out := CapturedOutput{
		{Time: when, Message: "first"},
		{Time: when, Message: "second"},
	}
	assert.Equal(t,
		"> [2024-03-01 10:20:30.000] first\n> [2024-03-01 10:20:30.000] second",
		out.ToString("> "))
	assert.Equal(t, "", CapturedOutput(nil).ToString("> "))
}

func TestLoggerWithPrefix(t *testing.T) {
	var base CapturingLogger
	l := LoggerWithPrefix(&base, "[x] ")
	l.Printf("hello %s", "there")
	l.Println("bye")

	out := base.Output()
	require.Len(t, out, 2)
	assert.Equal(t, "[x] hello there", out[0].Message)
	assert.Equal(t, "[x]  bye", out[1].Message)
}
