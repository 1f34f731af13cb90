package shoptests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingTablesPattern(t *testing.T) {
	for _, body := range []string{
		`relation "products" does not exist`,
		`{"success":false,"error":"relation \"products\" does not exist"}`,
		`ERROR: Relation products does not exist`,
	} {
		assert.True(t, missingTablesPattern.MatchString(body), body)
	}
	assert.False(t, missingTablesPattern.MatchString(`relation "orders" does not exist`))
}
