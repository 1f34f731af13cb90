package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/nirvanashop/shop-contract-tests/framework"
	"github.com/nirvanashop/shop-contract-tests/framework/ctest"
	"github.com/nirvanashop/shop-contract-tests/framework/harness"
	"github.com/nirvanashop/shop-contract-tests/shoptests"

	"github.com/fatih/color"
)

var version = "dev" //nolint:gochecknoglobals

func main() {
	var params commandParams
	var ledger *ctest.Ledger
	cmd := newRootCommand(&params, func() error {
		var err error
		ledger, err = run(params, os.Stdout)
		return err
	})

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(ledger, err))
}

// exitCode is 0 only if the run completed and nothing failed. A nil ledger with no error means
// the command exited before running, as it does for --help.
func exitCode(ledger *ctest.Ledger, err error) int {
	if err != nil || (ledger != nil && !ledger.OK()) {
		return 1
	}
	return 0
}

func run(params commandParams, out io.Writer) (*ctest.Ledger, error) {
	if params.noColor {
		color.NoColor = true
	}
	if params.skipFile != "" {
		if err := loadSuppressions(&params); err != nil {
			return nil, err
		}
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(out, "", log.LstdFlags)
	}

	harness, err := harness.NewTargetHarness(params.baseURL, params.timeout, mainDebugLogger)
	if err != nil {
		return nil, err
	}

	var testLogger ctest.TestLogger = &ctest.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		Notes:                shoptests.OperatorNotes(),
		Output:               out,
	}
	if params.jUnitFile != "" || params.reportFile != "" {
		multi := &ctest.MultiTestLogger{Loggers: []ctest.TestLogger{testLogger}}
		if params.jUnitFile != "" {
			multi.Loggers = append(multi.Loggers,
				ctest.NewJUnitTestLogger(params.jUnitFile, harness.BaseURL(), params.filters, out))
		}
		if params.reportFile != "" {
			multi.Loggers = append(multi.Loggers, ctest.NewYAMLReportLogger(params.reportFile, harness.BaseURL(), out))
		}
		testLogger = multi
	}

	options := []shoptests.SuiteOption{shoptests.WithOutput(out)}
	if params.forgedToken {
		options = append(options, shoptests.WithForgedCredentials())
	}
	ledger := shoptests.RunShopTestSuite(harness, params.filters, testLogger, options...)

	if err := testLogger.EndLog(ledger); err != nil {
		return nil, fmt.Errorf("error writing log: %w", err)
	}

	if params.recordFailures != "" {
		if err := writeFailures(params.recordFailures, ledger); err != nil {
			return nil, err
		}
	}

	return ledger, nil
}

// loadSuppressions adds a filter for each test ID listed in the skip file. Lines are in the
// same format that --record-failures writes.
func loadSuppressions(params *commandParams) error {
	file, err := os.Open(params.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %w", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		params.filters.MustNotMatch = append(params.filters.MustNotMatch,
			ctest.ExactTestIDPattern(ctest.ParseTestID(line)))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("while processing suppression file: %w", err)
	}
	return nil
}

func writeFailures(path string, ledger *ctest.Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create failures file: %w", err)
	}
	for _, r := range ledger.Failures() {
		if _, err := fmt.Fprintln(f, r.ID); err != nil {
			_ = f.Close()
			return fmt.Errorf("cannot write failures file: %w", err)
		}
	}
	return f.Close()
}
