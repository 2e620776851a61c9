// Package treesitter provides a JavaScript parser built on tree-sitter.
package treesitter

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/yaklabco/gojscs/pkg/jsast"
)

// Name identifies this parser in configuration.
const Name = "tree-sitter"

// Parser implements lint.Parser using the tree-sitter JavaScript grammar.
// It is safe for concurrent use; each call gets its own sitter parser.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Name returns the parser name.
func (p *Parser) Name() string {
	return Name
}

// Parse converts source into a jsast.Program.
//
// The grammar accepts every ECMAScript edition and JSX, so opts does not
// change what is accepted. Source that does not parse cleanly yields a
// *jsast.SyntaxError pointing at the first ERROR or MISSING node.
func (p *Parser) Parse(ctx context.Context, filename string, source []byte, _ jsast.ParseOptions) (*jsast.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	sp := sitter.NewParser()
	sp.SetLanguage(javascript.GetLanguage())

	tree, err := sp.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	lines := jsast.NewLineIndex(source)
	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root, source, lines)
	}

	conv := newConverter(source, lines)
	conv.convert(root, "")

	return &jsast.Program{
		Source: source,
		Tree:   conv.builder.Tree(),
		Tokens: conv.tokens,
		Lines:  lines,
	}, nil
}

// syntaxError locates the first ERROR or MISSING node below n.
func syntaxError(n *sitter.Node, source []byte, lines *jsast.LineIndex) *jsast.SyntaxError {
	bad := firstError(n)
	if bad == nil {
		return &jsast.SyntaxError{Message: "Unexpected token", Pos: lines.Position(0)}
	}

	pos := lines.Position(int(bad.StartByte()))
	if bad.IsMissing() {
		return &jsast.SyntaxError{Message: "Missing " + bad.Type(), Pos: pos}
	}

	text := strings.TrimSpace(bad.Content(source))
	if text == "" {
		return &jsast.SyntaxError{Message: "Unexpected end of input", Pos: pos}
	}
	if idx := strings.IndexAny(text, " \t\r\n"); idx > 0 {
		text = text[:idx]
	}
	return &jsast.SyntaxError{Message: "Unexpected token " + text, Pos: pos}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
