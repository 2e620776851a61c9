package rules

import (
	"fmt"
	"slices"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/jsast"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// DisallowKeywordsRule reports uses of listed keywords.
type DisallowKeywordsRule struct {
	lint.BaseRule
	keywords []string
}

// NewDisallowKeywordsRule creates the disallowKeywords rule.
func NewDisallowKeywordsRule() *DisallowKeywordsRule {
	return &DisallowKeywordsRule{
		BaseRule: lint.NewBaseRule("disallowKeywords", "Disallows usage of the listed keywords"),
	}
}

// Configure accepts a non-empty array of keywords.
func (r *DisallowKeywordsRule) Configure(value any) error {
	keywords, ok := config.AsStringList(value)
	if !ok || len(keywords) == 0 {
		return r.OptionError("disallowKeywords option requires array value")
	}
	r.keywords = keywords
	return nil
}

// Check reports every listed keyword token.
func (r *DisallowKeywordsRule) Check(file *lint.File, errs *lint.Errors) {
	file.IterateTokensByTypeAndValue(jsast.TokenKeyword, r.keywords, func(tok *jsast.Token) {
		errs.Add("Illegal keyword: "+tok.Value, tok)
	})
}

// defaultSpacedKeywords are the keywords requireSpaceAfterKeywords checks
// when configured with true.
var defaultSpacedKeywords = []string{
	"do", "for", "if", "else", "switch", "case", "try", "catch",
	"void", "while", "with", "return", "typeof", "function",
}

// RequireSpaceAfterKeywordsRule requires whitespace after listed keywords.
type RequireSpaceAfterKeywordsRule struct {
	lint.BaseRule
	keywords []string
}

// NewRequireSpaceAfterKeywordsRule creates the requireSpaceAfterKeywords rule.
func NewRequireSpaceAfterKeywordsRule() *RequireSpaceAfterKeywordsRule {
	return &RequireSpaceAfterKeywordsRule{
		BaseRule: lint.NewBaseRule("requireSpaceAfterKeywords", "Requires space after the listed keywords"),
	}
}

// Configure accepts true or an array of keywords.
func (r *RequireSpaceAfterKeywordsRule) Configure(value any) error {
	if b, ok := config.AsBool(value); ok && b {
		r.keywords = slices.Clone(defaultSpacedKeywords)
		return nil
	}
	keywords, ok := config.AsStringList(value)
	if !ok {
		return r.OptionError("requireSpaceAfterKeywords option requires array or true value")
	}
	r.keywords = keywords
	return nil
}

// Check asserts whitespace between each keyword and the following token.
func (r *RequireSpaceAfterKeywordsRule) Check(file *lint.File, errs *lint.Errors) {
	file.IterateTokensByTypeAndValue(jsast.TokenKeyword, r.keywords, func(tok *jsast.Token) {
		next := file.GetNextToken(tok, lint.IncludeComments())
		if next == nil || next.IsPunctuator(";") {
			return
		}
		errs.Assert().WhitespaceBetween(lint.WhitespaceOptions{
			Token:     tok,
			NextToken: next,
			Message:   fmt.Sprintf("Missing space after `%s` keyword", tok.Value),
		})
	})
}

// Keywords accepted by requireCurlyBraces.
const (
	curlyIf    = "if"
	curlyElse  = "else"
	curlyFor   = "for"
	curlyWhile = "while"
	curlyDo    = "do"
	curlyWith  = "with"
)

var defaultCurlyKeywords = []string{curlyIf, curlyElse, curlyFor, curlyWhile, curlyDo, curlyWith}

// RequireCurlyBracesRule requires statement bodies to be blocks.
type RequireCurlyBracesRule struct {
	lint.BaseRule
	keywords map[string]bool
}

// NewRequireCurlyBracesRule creates the requireCurlyBraces rule.
func NewRequireCurlyBracesRule() *RequireCurlyBracesRule {
	return &RequireCurlyBracesRule{
		BaseRule: lint.NewBaseRule("requireCurlyBraces", "Requires curly braces after statements"),
	}
}

// Configure accepts true or an array of keywords.
func (r *RequireCurlyBracesRule) Configure(value any) error {
	var keywords []string
	if b, ok := config.AsBool(value); ok && b {
		keywords = defaultCurlyKeywords
	} else if list, ok := config.AsStringList(value); ok {
		keywords = list
	} else {
		return r.OptionError("requireCurlyBraces option requires array or true value")
	}

	r.keywords = make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		r.keywords[kw] = true
	}
	return nil
}

// Check reports statement bodies that are not blocks.
func (r *RequireCurlyBracesRule) Check(file *lint.File, errs *lint.Errors) {
	tree := file.Tree()

	file.IterateNodesByType(func(n *jsast.Node) {
		var keyword, label string
		var body *jsast.Node

		switch n.Type {
		case jsast.TypeIfStatement:
			keyword, label, body = curlyIf, "If", tree.ChildByField(n, "consequence")
		case jsast.TypeElseClause:
			keyword, label = curlyElse, "Else"
			if children := tree.Children(n); len(children) > 0 {
				body = children[0]
			}
			if body != nil && body.Type == jsast.TypeIfStatement {
				return
			}
		case jsast.TypeForStatement:
			keyword, label, body = curlyFor, "For", tree.ChildByField(n, "body")
		case jsast.TypeForInStatement:
			keyword, label, body = curlyFor, "For in", tree.ChildByField(n, "body")
			if n.Attr("of") == "true" {
				label = "For of"
			}
		case jsast.TypeWhileStatement:
			keyword, label, body = curlyWhile, "While", tree.ChildByField(n, "body")
		case jsast.TypeDoWhileStatement:
			keyword, label, body = curlyDo, "Do while", tree.ChildByField(n, "body")
		case jsast.TypeWithStatement:
			keyword, label, body = curlyWith, "With", tree.ChildByField(n, "body")
		}

		if !r.keywords[keyword] || body == nil || body.Type == jsast.TypeBlockStatement {
			return
		}
		errs.Add(label+" statement without curly braces", n)
	},
		jsast.TypeIfStatement, jsast.TypeElseClause, jsast.TypeForStatement,
		jsast.TypeForInStatement, jsast.TypeWhileStatement, jsast.TypeDoWhileStatement,
		jsast.TypeWithStatement,
	)
}

