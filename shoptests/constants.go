package shoptests

import "regexp"

// Categories are the top-level scopes of the suite, in the order they first run.
const (
	CategoryPublic = "public endpoints"
	CategoryAuth   = "auth endpoints"
	CategoryAdmin  = "admin endpoints"
	CategoryForged = "forged credentials"
)

const (
	rejectedUnauthorizedMessage = "Correctly rejected unauthorized request"
	rejectedForgedMessage       = "Correctly rejected forged credentials"
	invalidRouteMessage         = "Correctly returned 404 for invalid route"
	noProductsToTestReason      = "No products available to test"
	noProductsReason            = "No products available"
	noProductIDMessage          = "No product ID found in products"
	missingTablesMessage        = "Database tables not created - run lib/db-setup.sql against the shop database"
	unknownProductName          = "Unknown"

	// testCartItemID is not a real cart item; the request should be rejected before the
	// backend looks for it.
	testCartItemID = "test-cart-id"
)

// missingTablesPattern is the error a freshly deployed backend reports until its schema exists.
// The quotes may be JSON-escaped.
var missingTablesPattern = regexp.MustCompile(`(?i)relation \\?"?products\\?"? does not exist`) //nolint:gochecknoglobals

// OperatorNotes are printed at the end of the report.
func OperatorNotes() []string {
	return []string{
		"If you see 'Database tables not created' errors, run lib/db-setup.sql against the shop database",
		"Authentication tests verify that endpoints correctly reject unauthorized requests",
		"To test authenticated endpoints, you need valid session tokens",
		"Admin endpoints require the 'admin' role in the user's metadata",
	}
}
