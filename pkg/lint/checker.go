package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gojscs/pkg/extract"
	"github.com/yaklabco/gojscs/pkg/jsast"
)

// ErrFileExcluded is returned by CheckFile and FixFile for paths the
// configuration excludes or does not accept.
var ErrFileExcluded = errors.New("file excluded")

// Checker runs the configured rules over source files.
//
// A Checker is safe for concurrent use once its Configuration is loaded:
// every check builds its own File and Errors.
type Checker struct {
	config    *Configuration
	parser    Parser
	extractor *extract.Extractor
}

// NewChecker creates a Checker. A parser selected through the esprima
// option takes precedence over parser.
func NewChecker(cfg *Configuration, parser Parser) *Checker {
	return &Checker{
		config:    cfg,
		parser:    parser,
		extractor: extract.New(),
	}
}

// Configuration returns the configuration the checker runs.
func (c *Checker) Configuration() *Configuration {
	return c.config
}

func (c *Checker) activeParser() Parser {
	if p, ok := c.config.Parser(); ok {
		return p
	}
	return c.parser
}

// CheckString checks source under filename.
//
// A source the parser rejects yields a *ParseError and no errors.
func (c *Checker) CheckString(ctx context.Context, source, filename string) (*Errors, error) {
	_, errs, err := c.check(ctx, []byte(source), filename)
	return errs, err
}

// check parses source and runs every configured rule in settings order.
func (c *Checker) check(ctx context.Context, source []byte, filename string) (*File, *Errors, error) {
	opts := c.config.ParseOptions()
	program, err := c.activeParser().Parse(ctx, filename, source, opts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, fmt.Errorf("check cancelled: %w", ctxErr)
		}
		return nil, nil, newParseError(filename, err)
	}

	file := NewFile(filename, program, opts)
	errs := c.newErrors(file)

	for _, rule := range c.config.GetConfiguredRules() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return file, errs, fmt.Errorf("check cancelled: %w", ctxErr)
		}
		errs.setCurrentRule(rule.OptionName())
		runRule(rule, file, errs)
	}
	errs.setCurrentRule("")

	return file, errs, nil
}

func (c *Checker) newErrors(file *File) *Errors {
	errs := NewErrors(file)
	errs.SetMaxErrors(c.config.MaxErrors())
	errs.SetFilter(c.config.ErrorFilter())
	return errs
}

// runRule isolates a rule's panic into a single error tagged with the
// rule name. The error bypasses pragmas.
func runRule(rule Rule, file *File, errs *Errors) {
	defer func() {
		if r := recover(); r != nil {
			errs.addUnsuppressible(
				fmt.Sprintf("Error running rule %s: %v", rule.OptionName(), r),
				jsast.Position{Line: 1, Column: 0},
			)
		}
	}()
	rule.Check(file, errs)
}

// CheckFile reads and checks the file at path. Markdown files matching an
// extract mask have their JavaScript blocks checked, with error positions
// mapped back onto the document.
func (c *Checker) CheckFile(ctx context.Context, path string) (*Errors, error) {
	if c.config.IsFileExcluded(path) {
		return nil, ErrFileExcluded
	}
	extracting := c.config.ShouldExtract(path)
	if !extracting && !c.config.HasCorrectExtension(path) {
		return nil, ErrFileExcluded
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if extracting {
		return c.CheckExtracted(ctx, content, path)
	}
	_, errs, err := c.check(ctx, content, path)
	return errs, err
}

// CheckExtracted checks the JavaScript blocks of a Markdown document.
func (c *Checker) CheckExtracted(ctx context.Context, content []byte, filename string) (*Errors, error) {
	blocks, err := c.extractor.Markdown(ctx, content)
	if err != nil {
		return nil, err
	}

	host := NewFile(filename, hostProgram(content), c.config.ParseOptions())
	out := c.newErrors(host)

	for _, block := range blocks {
		_, errs, err := c.check(ctx, block.Source, filename)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) && pe.Line > 0 {
				pe.Line, pe.Column = block.MapPosition(pe.Line, pe.Column)
			}
			return out, err
		}
		for _, e := range errs.GetUnfilteredList() {
			e.Line, e.Column = block.MapPosition(e.Line, e.Column)
			e.tokenIndex = -1
			out.currentRule = e.RuleName
			out.store(e)
		}
		if errs.MaxErrorsExceeded() {
			out.exceeded = true
		}
	}
	out.setCurrentRule("")
	return out, nil
}

// hostProgram wraps a non-JavaScript document so errors can be explained
// against its lines.
func hostProgram(content []byte) *jsast.Program {
	builder := jsast.NewBuilder(1)
	lines := jsast.NewLineIndex(content)
	builder.Open(jsast.TypeProgram, "", jsast.SourceRange{Start: 0, End: len(content)}, jsast.Location{
		Start: jsast.Position{Line: 1},
		End:   lines.Position(len(content)),
	})
	builder.Close()
	return &jsast.Program{Source: content, Tree: builder.Tree(), Lines: lines}
}
