package ctest

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/nirvanashop/shop-contract-tests/framework"
	"github.com/nirvanashop/shop-contract-tests/framework/helpers"
)

// JUnitTestLogger writes a JUnit XML report with one testsuite per category. It takes the
// list of test cases from the ledger, and timing and debug output from the events it
// receives while the tests run.
type JUnitTestLogger struct {
	filePath  string
	targetURL string
	filters   RegexFilters
	out       io.Writer
	tests     map[string]jUnitTestStatus
	lock      sync.Mutex
}

type jUnitTestStatus struct {
	output    string
	startTime time.Time
	duration  time.Duration
}

// Struct definitions for the JUnit XML schema - see https://github.com/jstemmer/go-junit-report

type jUnitXMLDocument struct {
	XMLName xml.Name            `xml:"testsuites"`
	Suites  []jUnitXMLTestSuite `xml:"testsuite"`
}

type jUnitXMLTestSuite struct {
	XMLName    xml.Name           `xml:"testsuite"`
	Tests      int                `xml:"tests,attr"`
	Failures   int                `xml:"failures,attr"`
	Skipped    int                `xml:"skipped,attr"`
	Time       string             `xml:"time,attr"`
	Name       string             `xml:"name,attr"`
	Properties []jUnitXMLProperty `xml:"properties>property,omitempty"`
	TestCases  []jUnitXMLTestCase `xml:"testcase"`
}

type jUnitXMLTestCase struct {
	XMLName     xml.Name             `xml:"testcase"`
	Classname   string               `xml:"classname,attr"`
	Name        string               `xml:"name,attr"`
	Time        string               `xml:"time,attr"`
	SkipMessage *jUnitXMLSkipMessage `xml:"skipped,omitempty"`
	Failure     *jUnitXMLFailure     `xml:"failure,omitempty"`
	SystemOut   string               `xml:"system-out,omitempty"`
}

type jUnitXMLSkipMessage struct {
	Message string `xml:"message,attr"`
}

type jUnitXMLProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type jUnitXMLFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

func NewJUnitTestLogger(
	filePath string,
	targetURL string,
	filters RegexFilters,
	out io.Writer,
) *JUnitTestLogger {
	return &JUnitTestLogger{
		filePath:  filePath,
		targetURL: targetURL,
		filters:   filters,
		out:       out,
		tests:     make(map[string]jUnitTestStatus),
	}
}

func (j *JUnitTestLogger) TestStarted(id TestID) {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.tests[id.String()] = jUnitTestStatus{
		startTime: time.Now(),
	}
}

func (j *JUnitTestLogger) TestError(TestID, error) {}

func (j *JUnitTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	j.lock.Lock()
	defer j.lock.Unlock()
	status := j.tests[id.String()]
	status.output = debugOutput.ToString("")
	status.duration = time.Since(status.startTime)
	j.tests[id.String()] = status
}

func (j *JUnitTestLogger) TestSkipped(TestID, string) {}

func (j *JUnitTestLogger) EndLog(ledger *Ledger) error {
	helpers.MustFprintf(j.out, "Writing JUnit data to %s\n", j.filePath)
	bytes, err := j.render(ledger)
	if err != nil {
		return err
	}
	return os.WriteFile(j.filePath, bytes, 0644) //nolint:gosec
}

func (j *JUnitTestLogger) render(ledger *Ledger) ([]byte, error) {
	j.lock.Lock()
	defer j.lock.Unlock()

	var doc jUnitXMLDocument

	properties := []jUnitXMLProperty{
		{
			Name:  "tests.target.url",
			Value: j.targetURL,
		},
		{
			Name:  "tests.filter.mustMatch",
			Value: j.filters.MustMatch.String(),
		},
		{
			Name:  "tests.filter.mustNotMatch",
			Value: j.filters.MustNotMatch.String(),
		},
	}

	for _, category := range ledger.Categories() {
		suite := jUnitXMLTestSuite{
			Name:       fmt.Sprintf("shop contract tests: %s", category),
			Properties: properties,
		}
		suiteTotalDuration := time.Duration(0)
		for _, result := range ledger.Results(category) {
			status := j.tests[result.ID.String()]

			suite.Tests++
			suiteTotalDuration += status.duration

			testCase := jUnitXMLTestCase{
				Classname: category,
				Name:      displayName(result.ID),
				Time:      jUnitDurationString(status.duration),
			}
			switch result.Outcome {
			case Skip:
				suite.Skipped++
				testCase.SkipMessage = &jUnitXMLSkipMessage{Message: result.Message}
			case Fail:
				suite.Failures++
				testCase.Failure = &jUnitXMLFailure{
					Message:  jUnitFailureMessage(result.Errors),
					Contents: status.output,
				}
			default:
				testCase.SystemOut = result.Message
			}

			suite.TestCases = append(suite.TestCases, testCase)
		}
		suite.Time = jUnitDurationString(suiteTotalDuration)
		doc.Suites = append(doc.Suites, suite)
	}

	bytes, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(bytes, '\n'), nil
}

func jUnitFailureMessage(errs []error) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		message := e.Error()
		if es, ok := e.(ErrorWithStacktrace); ok {
			message += "\n  Stacktrace:"
			for _, s := range es.Stacktrace {
				message += "\n    " + s.String()
			}
		}
		messages = append(messages, message)
	}
	return strings.Join(messages, "\n")
}

func jUnitDurationString(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
