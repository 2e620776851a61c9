package jsast

// Token types. Comment tokens use TokenLine and TokenBlock.
const (
	TokenKeyword    = "Keyword"
	TokenIdentifier = "Identifier"
	TokenPunctuator = "Punctuator"
	TokenString     = "String"
	TokenNumeric    = "Numeric"
	TokenRegExp     = "RegularExpression"
	TokenTemplate   = "Template"
	TokenBoolean    = "Boolean"
	TokenNull       = "Null"
	TokenJSXText    = "JSXText"
	TokenLine       = "Line"
	TokenBlock      = "Block"
)

// TokenTypes lists every token type.
var TokenTypes = []string{
	TokenKeyword, TokenIdentifier, TokenPunctuator, TokenString,
	TokenNumeric, TokenRegExp, TokenTemplate, TokenBoolean,
	TokenNull, TokenJSXText, TokenLine, TokenBlock,
}

// Token is a lexical token of the source.
//
// Tokens are stored in a flat slice ordered by Range.Start. Comments are
// part of that slice and are flagged with IsComment.
type Token struct {
	// Type is one of the Token* constants.
	Type string

	// Value is the source text of the token. For comments it is the
	// comment body without the delimiters.
	Value string

	// Range is the byte range of the token, including comment delimiters.
	Range SourceRange

	// Loc is the line/column span of the token.
	Loc Location

	// IsComment is true for Line and Block tokens.
	IsComment bool

	// Index is the position of the token within its file's token slice.
	Index int
}

// StartPosition implements Locator.
func (t *Token) StartPosition() Position {
	return t.Loc.Start
}

// Is reports whether the token has the given type and value.
func (t *Token) Is(typ, value string) bool {
	return t != nil && t.Type == typ && t.Value == value
}

// IsPunctuator reports whether the token is the punctuator value.
func (t *Token) IsPunctuator(value string) bool {
	return t.Is(TokenPunctuator, value)
}
