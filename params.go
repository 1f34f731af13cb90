package main

import (
	"errors"
	"os"
	"time"

	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/harness"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultBaseURL = "https://nirvana-shop.preview.emergentagent.com/api"
	baseURLEnvVar  = "SHOP_API_URL"
)

type commandParams struct {
	baseURL        string
	timeout        time.Duration
	filters        ctest.RegexFilters
	skipFile       string
	recordFailures string
	debug          bool
	debugAll       bool
	jUnitFile      string
	reportFile     string
	forgedToken    bool
	noColor        bool
}

func defaultBaseURLFromEnv() string {
	if u := os.Getenv(baseURLEnvVar); u != "" {
		return u
	}
	return defaultBaseURL
}

func (c *commandParams) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.baseURL, "url", defaultBaseURLFromEnv(),
		"base URL of the shop API, including the /api prefix (default from $"+baseURLEnvVar+")")
	fs.DurationVar(&c.timeout, "timeout", harness.DefaultTimeout, "timeout for each request")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.skipFile, "skip-file", "", "file listing the IDs of tests not to run, one per line")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write the IDs of failed tests to the specified path")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.StringVar(&c.reportFile, "report", "", "write a YAML report to the specified path")
	fs.BoolVar(&c.forgedToken, "forged-token", false, "also check that a forged bearer token is rejected")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")
}

func (c *commandParams) validate() error {
	if c.baseURL == "" {
		return errors.New("--url must not be empty")
	}
	if c.timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	return nil
}

func newRootCommand(params *commandParams, runFn func() error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop-contract-tests",
		Short: "Smoke tests for the shop backend API",
		Long: `shop-contract-tests sends a fixed sequence of requests to the shop backend and checks
the status and shape of each response. Public endpoints must work without credentials;
cart, order, and admin endpoints must reject requests that have none.

The exit status is 0 if no test failed, and 1 otherwise.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.validate(); err != nil {
				return err
			}
			return runFn()
		},
	}
	params.addFlags(cmd.Flags())
	return cmd
}
