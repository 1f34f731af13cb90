package shoptests

import (
	"io"
	"os"

	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/harness"
	"github.com/nirvanashop/shop-contract-tests/framework/helpers"
	"github.com/nirvanashop/shop-contract-tests/shopapi"
)

type suiteConfig struct {
	forgedCredentials bool
	output            io.Writer
}

// SuiteOption is an optional parameter for RunShopTestSuite.
type SuiteOption helpers.ConfigOption[suiteConfig]

// WithForgedCredentials enables the probes that send a forged bearer token.
func WithForgedCredentials() SuiteOption {
	return helpers.ConfigOptionFunc[suiteConfig](func(c *suiteConfig) error {
		c.forgedCredentials = true
		return nil
	})
}

// WithOutput sets where the suite writes its preamble. The default is standard output.
func WithOutput(w io.Writer) SuiteOption {
	return helpers.ConfigOptionFunc[suiteConfig](func(c *suiteConfig) error {
		c.output = w
		return nil
	})
}

// RunShopTestSuite runs every probe in a fixed order and returns the ledger of results. It
// never stops early: a failed probe is recorded, and probes that depend on its data are
// skipped.
func RunShopTestSuite(
	harness *harness.TargetHarness,
	filter ctest.Filter,
	testLogger ctest.TestLogger,
	options ...SuiteOption,
) *ctest.Ledger {
	config := suiteConfig{output: os.Stdout}
	_ = helpers.ApplyOptions(&config, options...) // none of our options can fail

	helpers.MustFprintf(config.output, "Testing against: %s\n", harness.BaseURL())
	if sdf, ok := filter.(interface{ Describe(io.Writer) }); ok {
		sdf.Describe(config.output)
	}

	testConfig := ctest.TestConfiguration{
		Filter:     filter,
		TestLogger: testLogger,
		Context: ShopTestContext{
			harness:          harness,
			forgedCredential: config.forgedCredentials,
		},
	}

	return ctest.Run(testConfig, doAllShopTests)
}

func doAllShopTests(t *ctest.T) {
	var products []shopapi.Product
	t.Run(CategoryPublic, func(t *ctest.T) {
		products = doPublicEndpointTests(t)
	})
	t.Run(CategoryAuth, doAuthEndpointTests)
	t.Run(CategoryAdmin, doAdminEndpointTests)
	t.Run(CategoryAuth, func(t *ctest.T) {
		doCartMutationTests(t, products)
	})
	if requireContext(t).forgedCredential {
		t.Run(CategoryForged, doForgedCredentialTests)
	}
}
