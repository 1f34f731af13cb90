package shoptests

import (
	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/opt"
	"github.com/nirvanashop/shop-contract-tests/shopapi"
)

func doAdminEndpointTests(t *ctest.T) {
	runProbe(t, "POST /api/products (no auth)",
		unauthorizedProbe("POST", shopapi.PathProducts, opt.Some[interface{}](shopapi.CreateProductParams{
			Name:        "Test Product",
			Description: "Test Description",
			Price:       99.99,
			ImageURL:    "https://example.com/image.jpg",
			Category:    "Test",
			Stock:       10,
		})))
	runProbe(t, "GET /api/admin/orders (no auth)",
		unauthorizedProbe("GET", shopapi.PathAdminOrders, opt.None[interface{}]()))
	runProbe(t, "GET /api/admin/customers (no auth)",
		unauthorizedProbe("GET", shopapi.PathAdminCustomers, opt.None[interface{}]()))
}
