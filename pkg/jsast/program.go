package jsast

import "fmt"

// Program is the parsed form of one source text: the node arena, the
// flat token array (comments included) and the line index.
type Program struct {
	Source []byte
	Tree   *Tree
	Tokens []Token
	Lines  *LineIndex
}

// ParseOptions selects language features. Parsers that accept every
// dialect may ignore them.
type ParseOptions struct {
	// ESNext enables syntax beyond the ES5 baseline.
	ESNext bool

	// ES3 restricts reserved-word handling to ES3 rules.
	ES3 bool
}

// SyntaxError reports source text the parser could not understand.
type SyntaxError struct {
	Message string
	Pos     Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Pos.Line, e.Pos.Column)
}
