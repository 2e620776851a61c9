package reporter

import (
	"bufio"
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/yaklabco/gojscs/pkg/runner"
)

// checkstyleVersion is the checkstyle document version CI parsers expect.
const checkstyleVersion = "4.3"

type junitSuite struct {
	XMLName  xml.Name    `xml:"testsuite"`
	Name     string      `xml:"name,attr"`
	Tests    int         `xml:"tests,attr"`
	Failures int         `xml:"failures,attr"`
	Errors   int         `xml:"errors,attr,omitempty"`
	Cases    []junitCase `xml:"testcase"`
}

type junitCase struct {
	Name     string         `xml:"name,attr"`
	Failures []junitFailure `xml:"failure"`
	Error    *junitFailure  `xml:"error"`
}

type junitFailure struct {
	Type    string `xml:"type,attr,omitempty"`
	Message string `xml:"message,attr"`
}

// JUnitReporter writes one testcase per file and one failure per error.
type JUnitReporter struct {
	opts Options
}

// NewJUnitReporter creates a new JUnit XML reporter.
func NewJUnitReporter(opts Options) *JUnitReporter {
	return &JUnitReporter{opts: opts}
}

// Report implements Reporter.
func (r *JUnitReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	suite := junitSuite{Name: "gojscs"}
	if result != nil {
		for i := range result.Files {
			file := &result.Files[i]
			tc := junitCase{Name: r.opts.displayPath(file.Path)}
			suite.Tests++

			if file.Err != nil {
				tc.Error = &junitFailure{Message: file.Err.Error()}
				suite.Errors++
			} else if file.Errors != nil {
				for _, e := range file.Errors.GetErrorList() {
					tc.Failures = append(tc.Failures, junitFailure{
						Type:    e.RuleName,
						Message: fmt.Sprintf("line %d, col %d, %s", e.Line, e.Column, r.opts.message(e)),
					})
				}
				suite.Failures += len(tc.Failures)
			}
			suite.Cases = append(suite.Cases, tc)
		}
	}

	if err := writeXML(r.opts.Writer, suite, r.opts.Compact); err != nil {
		return 0, err
	}
	return suite.Failures, nil
}

type checkstyleDoc struct {
	XMLName xml.Name         `xml:"checkstyle"`
	Version string           `xml:"version,attr"`
	Files   []checkstyleFile `xml:"file"`
}

type checkstyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkstyleError `xml:"error"`
}

type checkstyleError struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// CheckstyleReporter writes a checkstyle XML document. Columns are
// 1-based as checkstyle consumers expect.
type CheckstyleReporter struct {
	opts Options
}

// NewCheckstyleReporter creates a new checkstyle XML reporter.
func NewCheckstyleReporter(opts Options) *CheckstyleReporter {
	return &CheckstyleReporter{opts: opts}
}

// Report implements Reporter.
func (r *CheckstyleReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	doc := checkstyleDoc{Version: checkstyleVersion}
	var total int
	if result != nil {
		for i := range result.Files {
			file := &result.Files[i]
			cf := checkstyleFile{Name: r.opts.displayPath(file.Path)}

			switch {
			case file.Err != nil:
				cf.Errors = append(cf.Errors, checkstyleError{
					Line:     1,
					Column:   1,
					Severity: "error",
					Message:  file.Err.Error(),
					Source:   "gojscs.parse",
				})
			case file.Errors != nil:
				for _, e := range file.Errors.GetErrorList() {
					cf.Errors = append(cf.Errors, checkstyleError{
						Line:     e.Line,
						Column:   e.Column + 1,
						Severity: "error",
						Message:  r.opts.message(e),
						Source:   "gojscs." + e.RuleName,
					})
					total++
				}
			}
			doc.Files = append(doc.Files, cf)
		}
	}

	if err := writeXML(r.opts.Writer, doc, r.opts.Compact); err != nil {
		return 0, err
	}
	return total, nil
}

func writeXML(w io.Writer, v any, compact bool) error {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	if _, err := bw.WriteString(xml.Header); err != nil {
		return fmt.Errorf("write XML: %w", err)
	}
	encoder := xml.NewEncoder(bw)
	if !compact {
		encoder.Indent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode XML: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("write XML: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write XML: %w", err)
	}
	return nil
}
