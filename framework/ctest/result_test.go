package ctest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "fail", Fail.String())
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}

func TestTestIDString(t *testing.T) {
	assert.Equal(t, "", TestID{}.String())
	assert.Equal(t, "auth endpoints", TestID{"auth endpoints"}.String())
	assert.Equal(t, "auth endpoints > GET /api/cart (no auth)", TestID{"auth endpoints", "GET /api/cart (no auth)"}.String())
	assert.Equal(t, "a > b > c", TestID{"a", "b", "c"}.String())
}

func TestParseTestID(t *testing.T) {
	assert.Nil(t, ParseTestID(""))
	id := TestID{"auth endpoints", "Cart CRUD operations", "PATCH /api/cart/:id (no auth)"}
	assert.Equal(t, id, ParseTestID(id.String()))
}

func TestTestIDPlus(t *testing.T) {
	assert.Equal(t, TestID{"name 1"}, TestID{}.Plus("name 1"))
	assert.Equal(t, TestID{"name 1", "name 2"}, TestID{}.Plus("name 1").Plus("name 2"))

	// Calling Plus does not modify the original value
	id1 := TestID{"name 1"}
	id2a := id1.Plus("name 2a")
	id2b := id1.Plus("name 2b")
	assert.Equal(t, TestID{"name 1"}, id1)
	assert.Equal(t, TestID{"name 1", "name 2a"}, id2a)
	assert.Equal(t, TestID{"name 1", "name 2b"}, id2b)
}

func TestTestIDNameAndCategory(t *testing.T) {
	assert.Equal(t, "", TestID(nil).Name())
	assert.Equal(t, "", TestID(nil).Category())

	r := TestResult{ID: TestID{"public endpoints", "GET /api/products"}}
	assert.Equal(t, "GET /api/products", r.Name())
	assert.Equal(t, "public endpoints", r.Category())
}

func TestErrorsMessage(t *testing.T) {
	assert.Equal(t, "", errorsMessage(nil))
	assert.Equal(t, "a; b", errorsMessage([]error{errors.New("a"), errors.New("b")}))
}
