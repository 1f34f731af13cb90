package shoptests

import (
	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/harness"
)

type ShopTestContext struct {
	harness          *harness.TargetHarness
	forgedCredential bool
}

func requireContext(t *ctest.T) ShopTestContext {
	if c, ok := t.Context().(ShopTestContext); ok {
		return c
	}
	panic("ShopTestContext was not included in the global test configuration!" +
		" This is a basic mistake in the initialization logic.")
}
