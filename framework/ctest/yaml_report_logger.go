package ctest

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nirvanashop/shop-contract-tests/framework"
	"github.com/nirvanashop/shop-contract-tests/framework/helpers"

	"gopkg.in/yaml.v3"
)

// YAMLReportLogger writes the ledger as a YAML document when the run ends. It ignores
// progress events.
type YAMLReportLogger struct {
	filePath  string
	targetURL string
	out       io.Writer
	now       func() time.Time
}

type yamlReport struct {
	Target     string               `yaml:"target"`
	FinishedAt string               `yaml:"finishedAt"`
	Summary    yamlReportSummary    `yaml:"summary"`
	Categories []yamlReportCategory `yaml:"categories"`
}

type yamlReportSummary struct {
	Passed  int  `yaml:"passed"`
	Failed  int  `yaml:"failed"`
	Skipped int  `yaml:"skipped"`
	OK      bool `yaml:"ok"`
}

type yamlReportCategory struct {
	Name  string           `yaml:"name"`
	Tests []yamlReportTest `yaml:"tests"`
}

type yamlReportTest struct {
	Name    string  `yaml:"name"`
	Outcome Outcome `yaml:"outcome"`
	Message string  `yaml:"message,omitempty"`
}

// NewYAMLReportLogger creates a logger that writes to filePath, and announces the write on out.
func NewYAMLReportLogger(filePath, targetURL string, out io.Writer) *YAMLReportLogger {
	return &YAMLReportLogger{filePath: filePath, targetURL: targetURL, out: out, now: time.Now}
}

func (y *YAMLReportLogger) TestStarted(TestID)                                        {}
func (y *YAMLReportLogger) TestError(TestID, error)                                   {}
func (y *YAMLReportLogger) TestFinished(TestID, TestResult, framework.CapturedOutput) {}
func (y *YAMLReportLogger) TestSkipped(TestID, string)                                {}

func (y *YAMLReportLogger) EndLog(ledger *Ledger) error {
	helpers.MustFprintf(y.out, "Writing YAML report to %s\n", y.filePath)
	data, err := y.render(ledger)
	if err != nil {
		return err
	}
	return os.WriteFile(y.filePath, data, 0644) //nolint:gosec
}

func (y *YAMLReportLogger) render(ledger *Ledger) ([]byte, error) {
	report := yamlReport{
		Target:     y.targetURL,
		FinishedAt: y.now().UTC().Format(time.RFC3339),
		Summary: yamlReportSummary{
			Passed:  ledger.Passed(),
			Failed:  ledger.Failed(),
			Skipped: ledger.Skipped(),
			OK:      ledger.OK(),
		},
	}
	for _, category := range ledger.Categories() {
		c := yamlReportCategory{Name: category}
		for _, r := range ledger.Results(category) {
			c.Tests = append(c.Tests, yamlReportTest{Name: displayName(r.ID), Outcome: r.Outcome, Message: r.Message})
		}
		report.Categories = append(report.Categories, c)
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("cannot encode YAML report: %w", err)
	}
	return data, nil
}
