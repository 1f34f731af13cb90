package shopapi

import "net/url"

// Paths are relative to the API base URL, which already includes the /api prefix.
const (
	PathProducts       = "/products"
	PathCart           = "/cart"
	PathOrders         = "/orders"
	PathAdminOrders    = "/admin/orders"
	PathAdminCustomers = "/admin/customers"

	// PathInvalidRoute is a path that no backend route handles.
	PathInvalidRoute = "/invalid-route"
)

// ProductPath is the path of a single product.
func ProductPath(id string) string {
	return PathProducts + "/" + url.PathEscape(id)
}

// CartItemPath is the path of a single cart item.
func CartItemPath(id string) string {
	return PathCart + "/" + url.PathEscape(id)
}
