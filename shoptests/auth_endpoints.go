package shoptests

import (
	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/opt"
	"github.com/nirvanashop/shop-contract-tests/shopapi"
)

func doAuthEndpointTests(t *ctest.T) {
	runProbe(t, "GET /api/cart (no auth)",
		unauthorizedProbe("GET", shopapi.PathCart, opt.None[interface{}]()))
	runProbe(t, "POST /api/cart (no auth)",
		unauthorizedProbe("POST", shopapi.PathCart, opt.Some[interface{}](shopapi.AddToCartParams{
			ProductID: "test-id",
			Quantity:  1,
		})))
	runProbe(t, "GET /api/orders (no auth)",
		unauthorizedProbe("GET", shopapi.PathOrders, opt.None[interface{}]()))
	runProbe(t, "POST /api/orders (no auth)",
		unauthorizedProbe("POST", shopapi.PathOrders, opt.Some[interface{}](shopapi.CreateOrderParams{
			Items:           []shopapi.OrderItem{},
			ShippingAddress: "Test Address",
			Phone:           "1234567890",
			UserName:        "Test User",
			UserEmail:       "test@example.com",
		})))
}

// doCartMutationTests runs after the admin tests, but its results belong with the other
// unauthenticated cart probes.
func doCartMutationTests(t *ctest.T, products []shopapi.Product) {
	t.Run("Cart CRUD operations", func(t *ctest.T) {
		if len(products) == 0 {
			t.SkipWithReason(noProductsReason)
		}
		runProbe(t, "PATCH /api/cart/:id (no auth)",
			unauthorizedProbe("PATCH", shopapi.CartItemPath(testCartItemID),
				opt.Some[interface{}](shopapi.UpdateCartItemParams{Quantity: 2})))
		runProbe(t, "DELETE /api/cart/:id (no auth)",
			unauthorizedProbe("DELETE", shopapi.CartItemPath(testCartItemID), opt.None[interface{}]()))
	})
}
