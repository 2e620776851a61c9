package lint

import (
	"sort"

	"github.com/yaklabco/gojscs/pkg/fix"
	"github.com/yaklabco/gojscs/pkg/jsast"
)

// File is the per-source-file context handed to rules.
//
// It owns the parsed program, the navigation indices built over it, the
// pragma index and the edits recorded during the fix phase. A File is
// created for one check and is never shared between goroutines.
//
// Slices returned by File accessors are shared by every rule checking the
// file. Do not mutate them.
type File struct {
	filename string
	program  *jsast.Program
	tokens   []jsast.Token
	options  jsast.ParseOptions

	// Lazily built indices.
	cache      *NodeCache
	comments   []*jsast.Token
	lines      []string
	lineBreaks []string
	pragmas    *PragmaIndex

	edits *fix.EditBuilder
}

// NewFile wraps a parsed program.
func NewFile(filename string, program *jsast.Program, opts jsast.ParseOptions) *File {
	tokens := program.Tokens
	for i := range tokens {
		tokens[i].Index = i
	}
	return &File{
		filename: filename,
		program:  program,
		tokens:   tokens,
		options:  opts,
		cache:    newNodeCache(),
		edits:    fix.NewEditBuilder(),
	}
}

// Filename returns the name the file was checked under.
func (f *File) Filename() string {
	return f.filename
}

// Source returns the original source text.
func (f *File) Source() []byte {
	return f.program.Source
}

// Tree returns the syntax tree.
func (f *File) Tree() *jsast.Tree {
	return f.program.Tree
}

// Root returns the Program node.
func (f *File) Root() *jsast.Node {
	return f.program.Tree.Root()
}

// Dialect returns the parse options the file was parsed with.
func (f *File) Dialect() jsast.ParseOptions {
	return f.options
}

// Tokens returns every token, comments included, in document order.
func (f *File) Tokens() []jsast.Token {
	return f.tokens
}

// Token returns the token at index, or nil when out of range.
func (f *File) Token(index int) *jsast.Token {
	if index < 0 || index >= len(f.tokens) {
		return nil
	}
	return &f.tokens[index]
}

// PositionOf converts a byte offset into a line/column position.
func (f *File) PositionOf(offset int) jsast.Position {
	return f.program.Lines.Position(offset)
}

// OffsetOf converts a line/column position into a byte offset.
func (f *File) OffsetOf(pos jsast.Position) int {
	return f.program.Lines.Offset(pos)
}

// GetTokenPosByRangeStart returns the index of the token starting exactly
// at offset.
func (f *File) GetTokenPosByRangeStart(offset int) (int, bool) {
	idx := sort.Search(len(f.tokens), func(i int) bool {
		return f.tokens[i].Range.Start >= offset
	})
	if idx < len(f.tokens) && f.tokens[idx].Range.Start == offset {
		return idx, true
	}
	return -1, false
}

// GetTokenByRangeStart returns the token starting exactly at offset.
func (f *File) GetTokenByRangeStart(offset int) *jsast.Token {
	if idx, ok := f.GetTokenPosByRangeStart(offset); ok {
		return &f.tokens[idx]
	}
	return nil
}

// GetTokenByRangeEnd returns the token ending exactly at offset.
func (f *File) GetTokenByRangeEnd(offset int) *jsast.Token {
	idx := sort.Search(len(f.tokens), func(i int) bool {
		return f.tokens[i].Range.End >= offset
	})
	if idx < len(f.tokens) && f.tokens[idx].Range.End == offset {
		return &f.tokens[idx]
	}
	return nil
}

// tokenIndexAt returns the index of the token containing pos. Between
// tokens it falls back to the closest token starting at or before pos.
// Columns past the end of a line count as the end of that line.
func (f *File) tokenIndexAt(pos jsast.Position) (int, bool) {
	offset := f.OffsetOf(pos)
	if lines := f.GetLines(); offset < 0 && pos.Line >= 1 && pos.Line <= len(lines) {
		offset = f.OffsetOf(jsast.Position{Line: pos.Line}) + len(lines[pos.Line-1])
	}
	if offset < 0 {
		return -1, false
	}
	idx := sort.Search(len(f.tokens), func(i int) bool {
		return f.tokens[i].Range.Start > offset
	}) - 1
	if idx < 0 {
		return -1, false
	}
	return idx, true
}

// TokenOption adjusts token navigation.
type TokenOption func(*tokenOptions)

type tokenOptions struct {
	includeComments bool
}

// IncludeComments makes navigation stop on comment tokens.
func IncludeComments() TokenOption {
	return func(o *tokenOptions) {
		o.includeComments = true
	}
}

func resolveTokenOptions(opts []TokenOption) tokenOptions {
	var o tokenOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// GetPrevToken returns the token before tok, skipping comments unless
// IncludeComments is given. It returns nil at the start of the file.
func (f *File) GetPrevToken(tok *jsast.Token, opts ...TokenOption) *jsast.Token {
	if tok == nil {
		return nil
	}
	return f.step(tok.Index, -1, resolveTokenOptions(opts))
}

// GetNextToken returns the token after tok, skipping comments unless
// IncludeComments is given. It returns nil at the end of the file.
func (f *File) GetNextToken(tok *jsast.Token, opts ...TokenOption) *jsast.Token {
	if tok == nil {
		return nil
	}
	return f.step(tok.Index, 1, resolveTokenOptions(opts))
}

// GetFirstToken returns the first token of the file.
func (f *File) GetFirstToken(opts ...TokenOption) *jsast.Token {
	return f.step(-1, 1, resolveTokenOptions(opts))
}

// GetLastToken returns the last token of the file.
func (f *File) GetLastToken(opts ...TokenOption) *jsast.Token {
	return f.step(len(f.tokens), -1, resolveTokenOptions(opts))
}

func (f *File) step(from, delta int, o tokenOptions) *jsast.Token {
	for i := from + delta; i >= 0 && i < len(f.tokens); i += delta {
		if o.includeComments || !f.tokens[i].IsComment {
			return &f.tokens[i]
		}
	}
	return nil
}

// GetFirstNodeToken returns the first token of n.
func (f *File) GetFirstNodeToken(n *jsast.Node) *jsast.Token {
	if n == nil {
		return nil
	}
	return f.GetTokenByRangeStart(n.Range.Start)
}

// GetLastNodeToken returns the last token of n.
func (f *File) GetLastNodeToken(n *jsast.Node) *jsast.Token {
	if n == nil {
		return nil
	}
	return f.GetTokenByRangeEnd(n.Range.End)
}

// GetNodeByRange returns the innermost node whose range contains offset.
func (f *File) GetNodeByRange(offset int) *jsast.Node {
	tree := f.Tree()
	node := tree.Root()
	if node == nil || !node.Range.Contains(offset) {
		return nil
	}
	for {
		var next *jsast.Node
		for _, child := range tree.Children(node) {
			if child.Range.Contains(offset) {
				next = child
				break
			}
		}
		if next == nil {
			return node
		}
		node = next
	}
}

// GetNodesByType returns the nodes of the given types in document order.
// Do not mutate the returned slice.
func (f *File) GetNodesByType(types ...string) []*jsast.Node {
	f.cache.buildNodes(f.Tree())
	return f.cache.NodesOfTypes(types...)
}

// IterateNodesByType visits every node of the given types in document
// order.
func (f *File) IterateNodesByType(visit func(n *jsast.Node), types ...string) {
	for _, n := range f.GetNodesByType(types...) {
		visit(n)
	}
}

// IterateTokensByType visits every token of the given types in document
// order.
func (f *File) IterateTokensByType(visit func(tok *jsast.Token), types ...string) {
	f.cache.buildTokens(f.tokens)
	for _, idx := range f.cache.TokenIndicesOfTypes(types...) {
		visit(&f.tokens[idx])
	}
}

// IterateTokensByTypeAndValue visits every token of type typ whose value
// is one of values.
func (f *File) IterateTokensByTypeAndValue(typ string, values []string, visit func(tok *jsast.Token)) {
	if len(values) == 0 {
		return
	}
	want := make(map[string]struct{}, len(values))
	for _, v := range values {
		want[v] = struct{}{}
	}
	f.IterateTokensByType(func(tok *jsast.Token) {
		if _, ok := want[tok.Value]; ok {
			visit(tok)
		}
	}, typ)
}

// GetComments returns the comment tokens in document order.
func (f *File) GetComments() []*jsast.Token {
	if f.comments == nil {
		f.comments = make([]*jsast.Token, 0)
		for i := range f.tokens {
			if f.tokens[i].IsComment {
				f.comments = append(f.comments, &f.tokens[i])
			}
		}
	}
	return f.comments
}

// GetLines returns the source split into lines, without line breaks.
// Index 0 is line 1.
func (f *File) GetLines() []string {
	f.buildLines()
	return f.lines
}

// GetLineBreaks returns the break sequence ending each line; the last
// entry is always empty.
func (f *File) GetLineBreaks() []string {
	f.buildLines()
	return f.lineBreaks
}

func (f *File) buildLines() {
	if f.lines != nil {
		return
	}
	infos := f.program.Lines.Lines()
	src := f.program.Source
	f.lines = make([]string, len(infos))
	f.lineBreaks = make([]string, len(infos))
	for i, li := range infos {
		f.lines[i] = string(src[li.Start:li.End])
		f.lineBreaks[i] = li.Break
	}
}

// GetFirstTokenOnLine returns the first token starting on line.
func (f *File) GetFirstTokenOnLine(line int, opts ...TokenOption) *jsast.Token {
	o := resolveTokenOptions(opts)
	idx := sort.Search(len(f.tokens), func(i int) bool {
		return f.tokens[i].Loc.Start.Line >= line
	})
	for ; idx < len(f.tokens) && f.tokens[idx].Loc.Start.Line == line; idx++ {
		if o.includeComments || !f.tokens[idx].IsComment {
			return &f.tokens[idx]
		}
	}
	return nil
}

// WhitespaceBefore returns the source text between tok and the token
// before it, comments included.
func (f *File) WhitespaceBefore(tok *jsast.Token) string {
	start := 0
	if prev := f.GetPrevToken(tok, IncludeComments()); prev != nil {
		start = prev.Range.End
	}
	return string(f.program.Source[start:tok.Range.Start])
}

// Pragmas returns the suppression index of the file.
func (f *File) Pragmas() *PragmaIndex {
	if f.pragmas == nil {
		f.pragmas = BuildPragmaIndex(f.tokens)
	}
	return f.pragmas
}

// IsEnabled reports whether rule may report at the token with the given
// index.
func (f *File) IsEnabled(rule string, tokenIndex int) bool {
	return f.Pragmas().IsRuleEnabled(rule, tokenIndex)
}
