package treesitter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/gojscs/pkg/jsast"
)

// converter copies a tree-sitter tree into a jsast arena and token slice.
type converter struct {
	source  []byte
	lines   *jsast.LineIndex
	builder *jsast.Builder
	tokens  []jsast.Token
}

func newConverter(source []byte, lines *jsast.LineIndex) *converter {
	return &converter{
		source:  source,
		lines:   lines,
		builder: jsast.NewBuilder(len(source) / 4),
		tokens:  make([]jsast.Token, 0, len(source)/3),
	}
}

// convert visits n in source order. Named nodes become arena nodes;
// leaves and atomic kinds become tokens.
func (c *converter) convert(n *sitter.Node, field string) {
	kind := n.Type()

	if isComment(kind) {
		c.emitComment(n)
		return
	}

	atomic := atomicKinds[kind] || n.ChildCount() == 0
	if n.IsNamed() {
		c.open(n, kind, field)
		defer c.builder.Close()
	}

	if atomic {
		if n.EndByte() > n.StartByte() {
			c.emitToken(n, kind)
		}
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		c.convert(child, n.FieldNameForChild(i))
	}
}

func (c *converter) open(n *sitter.Node, kind, field string) {
	rng := c.rangeOf(n)
	c.builder.Open(nodeType(kind), field, rng, c.locOf(rng))

	switch kind {
	case "variable_declaration":
		c.builder.SetAttr("kind", "var")
	case "lexical_declaration":
		if first := n.Child(0); first != nil {
			c.builder.SetAttr("kind", first.Type())
		}
	case "for_in_statement":
		c.builder.SetAttr("of", boolAttr(hasChildOfType(n, "of")))
	}
}

func (c *converter) emitToken(n *sitter.Node, kind string) {
	rng := c.rangeOf(n)
	value := string(c.source[rng.Start:rng.End])
	c.tokens = append(c.tokens, jsast.Token{
		Type:  tokenType(kind, value, n.IsNamed()),
		Value: value,
		Range: rng,
		Loc:   c.locOf(rng),
		Index: len(c.tokens),
	})
}

func (c *converter) emitComment(n *sitter.Node) {
	rng := c.rangeOf(n)
	raw := string(c.source[rng.Start:rng.End])

	typ := jsast.TokenLine
	value := raw
	switch {
	case strings.HasPrefix(raw, "/*"):
		typ = jsast.TokenBlock
		value = strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
	case strings.HasPrefix(raw, "//"):
		value = strings.TrimPrefix(raw, "//")
	case strings.HasPrefix(raw, "#!"):
		value = strings.TrimPrefix(raw, "#!")
	}

	c.tokens = append(c.tokens, jsast.Token{
		Type:      typ,
		Value:     value,
		Range:     rng,
		Loc:       c.locOf(rng),
		IsComment: true,
		Index:     len(c.tokens),
	})
}

func (c *converter) rangeOf(n *sitter.Node) jsast.SourceRange {
	return jsast.SourceRange{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func (c *converter) locOf(rng jsast.SourceRange) jsast.Location {
	return jsast.Location{
		Start: c.lines.Position(rng.Start),
		End:   c.lines.Position(rng.End),
	}
}

func isComment(kind string) bool {
	return kind == "comment" || kind == "html_comment" || kind == "hash_bang_line"
}

func hasChildOfType(n *sitter.Node, kind string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && child.Type() == kind {
			return true
		}
	}
	return false
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
