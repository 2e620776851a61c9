package jsast

// SourceRange is a half-open byte range [Start, End) in the source text.
type SourceRange struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if offset lies within the range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Encloses returns true if other lies entirely within r.
func (r SourceRange) Encloses(other SourceRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Position is a line and column in a file.
// Lines are 1-based; columns are 0-based and counted in runes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if the position points into a file.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column >= 0
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// StartPosition lets a Position be used wherever a location is expected.
func (p Position) StartPosition() Position {
	return p
}

// Location is the line/column span of a token or node.
type Location struct {
	Start Position
	End   Position
}

// IsSingleLine returns true if start and end are on the same line.
func (l Location) IsSingleLine() bool {
	return l.Start.Line == l.End.Line
}

// Locator is anything that has a starting position.
// Tokens, nodes and plain positions all satisfy it.
type Locator interface {
	StartPosition() Position
}
