package shoptests

import (
	"errors"
	"fmt"

	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/matchers"
	"github.com/nirvanashop/shop-contract-tests/shopapi"
	"github.com/nirvanashop/shop-contract-tests/shoptests/expect"
)

func doPublicEndpointTests(t *ctest.T) []shopapi.Product {
	var products []shopapi.Product
	t.Run("GET /api/products", func(t *ctest.T) {
		products = listProducts(t)
	})
	t.Run("GET /api/products/:id", func(t *ctest.T) {
		getSingleProduct(t, products)
	})
	runProbe(t, "Invalid route handling", ProbeSpec{
		Method:      "GET",
		Path:        shopapi.PathInvalidRoute,
		Expect:      expect.Status.Is(404),
		PassMessage: invalidRouteMessage,
	})
	return products
}

// listProducts fetches the product list. If anything goes wrong the test fails and the result
// is empty.
func listProducts(t *ctest.T) []shopapi.Product {
	resp, err := send(t, ProbeSpec{Method: "GET", Path: shopapi.PathProducts, Expect: expect.Status.Is(200)})
	var statusErr expect.UnexpectedStatusError
	switch {
	case errors.As(err, &statusErr):
		if pass, _ := matchers.MatchesPattern(missingTablesPattern).Test(resp.Body); pass {
			t.Errorf("%s", missingTablesMessage)
		} else {
			t.Errorf("%s", statusErr.WithResponse())
		}
		return nil
	case err != nil:
		t.FailWithError(err)
		return nil
	}

	parsed, err := shopapi.ParseProductsResponse(resp.Body)
	if err != nil {
		t.FailWithError(err)
		return nil
	}
	t.Pass(fmt.Sprintf("Retrieved %d products successfully", len(parsed.Products)))
	return parsed.Products
}

func getSingleProduct(t *ctest.T, products []shopapi.Product) {
	if len(products) == 0 {
		t.SkipWithReason(noProductsToTestReason)
	}
	id := products[0].ID()
	if !id.IsDefined() {
		t.Errorf("%s", noProductIDMessage)
		return
	}
	resp, ok := probe(t, ProbeSpec{Method: "GET", Path: shopapi.ProductPath(id.Value()), Expect: expect.Status.Is(200)})
	if !ok {
		return
	}
	parsed, err := shopapi.ParseProductResponse(resp.Body)
	if err != nil {
		t.FailWithError(err)
		return
	}
	t.Pass(fmt.Sprintf("Retrieved product '%s' successfully", parsed.Product.Name().OrElse(unknownProductName)))
}
