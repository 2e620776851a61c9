package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/yaklabco/gojscs/pkg/analysis"
)

// SARIF tool information.
const (
	sarifToolName  = "gojscs"
	sarifToolURI   = "https://github.com/yaklabco/gojscs"
	sarifLevel     = "error"
	sarifParseRule = "parseError"
)

// SARIFRenderer formats a report as SARIF 2.1.0 for code scanning
// services.
type SARIFRenderer struct {
	opts Options
}

// NewSARIFRenderer creates a new SARIF renderer.
func NewSARIFRenderer(opts Options) *SARIFRenderer {
	return &SARIFRenderer{opts: opts}
}

// Render implements Renderer.
func (r *SARIFRenderer) Render(_ context.Context, report *analysis.Report) error {
	doc := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	if r.opts.Version != "" {
		run.Tool.Driver.WithVersion(r.opts.Version)
	}

	ruleSet := make(map[string]struct{})
	fileSet := make(map[string]struct{})
	for _, e := range report.Errors {
		ruleSet[e.Rule] = struct{}{}
		fileSet[filepath.ToSlash(e.File)] = struct{}{}
	}
	if len(report.Failures) > 0 {
		ruleSet[sarifParseRule] = struct{}{}
	}
	for _, f := range report.Failures {
		fileSet[filepath.ToSlash(f.File)] = struct{}{}
	}

	for _, name := range sortedKeys(ruleSet) {
		run.AddRule(name).WithShortDescription(sarif.NewMultiformatMessageString().WithText(name))
	}
	for _, file := range sortedKeys(fileSet) {
		run.AddDistinctArtifact(file)
	}

	for _, e := range report.Errors {
		region := sarif.NewRegion().
			WithStartLine(e.Line).
			WithStartColumn(e.Column + 1) // SARIF uses 1-based columns
		run.AddResult(newSARIFResult(e.Rule, e.Message, e.File, region))
	}
	for _, f := range report.Failures {
		run.AddResult(newSARIFResult(sarifParseRule, f.Message, f.File, nil))
	}

	doc.AddRun(run)
	if err := doc.PrettyWrite(r.opts.Writer); err != nil {
		return fmt.Errorf("write SARIF: %w", err)
	}
	return nil
}

func newSARIFResult(rule, message, file string, region *sarif.Region) *sarif.Result {
	physicalLocation := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewSimpleArtifactLocation(filepath.ToSlash(file)))
	if region != nil {
		physicalLocation.WithRegion(region)
	}
	return sarif.NewRuleResult(rule).
		WithMessage(sarif.NewTextMessage(message)).
		WithLevel(sarifLevel).
		WithLocations([]*sarif.Location{
			sarif.NewLocationWithPhysicalLocation(physicalLocation),
		})
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
