package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// RelativePath converts path to a path relative to workDir.
// If workDir is empty or conversion fails, returns the original path.
func RelativePath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	fileMap   map[string]*FileAnalysis
	ruleFiles map[string]map[string]bool
	fileRules map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		fileRules: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) file(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileRules[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) rule(name string) *RuleAnalysis {
	if _, ok := ctx.ruleMap[name]; !ok {
		ctx.ruleMap[name] = &RuleAnalysis{Rule: name}
		ctx.ruleFiles[name] = make(map[string]bool)
	}
	return ctx.ruleMap[name]
}

func (ctx *analysisContext) buildByRule(opts Options) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for name, ra := range ctx.ruleMap {
		for f := range ctx.ruleFiles[name] {
			ra.Files = append(ra.Files, f)
		}
		slices.Sort(ra.Files)
		result = append(result, *ra)
	}
	sortRuleAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Errors == 0 {
			continue
		}
		for r := range ctx.fileRules[path] {
			fa.Rules = append(fa.Rules, r)
		}
		slices.Sort(fa.Rules)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through the errors to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}
	report.MaxErrorsExceeded = result.MaxErrorsExceeded

	ctx := newAnalysisContext()

	for i := range result.Files {
		file := &result.Files[i]
		displayPath := RelativePath(file.Path, opts.WorkingDir)

		if file.Err != nil {
			report.Totals.FilesFailed++
			report.Failures = append(report.Failures, FailureEntry{
				File:    displayPath,
				Message: file.Err.Error(),
			})
			continue
		}
		report.Totals.Files++
		if file.Written {
			report.Totals.FilesModified++
		}
		if file.Fix != nil {
			report.Totals.Fixed += file.Fix.FixedErrors
		}
		if file.Errors == nil {
			continue
		}

		list := file.Errors.GetErrorList()
		if len(list) == 0 {
			continue
		}
		report.Totals.FilesWithErrors++
		fa := ctx.file(displayPath)

		for _, e := range list {
			fixable := opts.fixable(e)
			report.Totals.Errors++
			fa.Errors++
			if fixable {
				report.Totals.Fixable++
				fa.Fixable++
			}
			ctx.fileRules[displayPath][e.RuleName] = true

			ra := ctx.rule(e.RuleName)
			ra.Errors++
			if fixable {
				ra.Fixable = true
			}
			ctx.ruleFiles[e.RuleName][displayPath] = true

			if opts.IncludeErrors {
				report.Errors = append(report.Errors, newErrorEntry(displayPath, e, fixable))
			}
		}
	}

	if opts.IncludeByRule {
		report.ByRule = ctx.buildByRule(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func newErrorEntry(path string, e lint.Error, fixable bool) ErrorEntry {
	return ErrorEntry{
		File:    path,
		Rule:    e.RuleName,
		Message: e.Message,
		Line:    e.Line,
		Column:  e.Column,
		Fixable: fixable,
	}
}

func sortRuleAnalysis(rules []RuleAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(rules, func(left, right RuleAnalysis) int {
		if sortBy == SortByAlpha {
			return cmp.Compare(left.Rule, right.Rule)
		}
		result := cmp.Compare(left.Errors, right.Errors)
		if desc {
			result = -result
		}
		if result == 0 {
			result = cmp.Compare(left.Rule, right.Rule)
		}
		return result
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		if sortBy == SortByAlpha {
			return cmp.Compare(left.Path, right.Path)
		}
		result := cmp.Compare(left.Errors, right.Errors)
		if desc {
			result = -result
		}
		if result == 0 {
			result = cmp.Compare(left.Path, right.Path)
		}
		return result
	})
}
