// Package fix provides byte-range edits and their application for
// auto-fixing.
package fix

// TextEdit replaces the bytes [Start, End) of a file with NewText.
type TextEdit struct {
	Start   int
	End     int
	NewText string
}

// IsDeletion reports whether the edit only removes text.
func (e TextEdit) IsDeletion() bool {
	return e.NewText == "" && e.End > e.Start
}

// EditBuilder accumulates edits for one file.
type EditBuilder struct {
	edits []TextEdit
}

// NewEditBuilder creates an empty EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{}
}

// ReplaceRange replaces bytes [start, end) with text.
func (b *EditBuilder) ReplaceRange(start, end int, text string) {
	b.edits = append(b.edits, TextEdit{Start: start, End: end, NewText: text})
}

// Insert inserts text at offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete removes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}

// Len returns the number of recorded edits.
func (b *EditBuilder) Len() int {
	return len(b.edits)
}

// Edits returns a copy of the recorded edits in recording order.
func (b *EditBuilder) Edits() []TextEdit {
	out := make([]TextEdit, len(b.edits))
	copy(out, b.edits)
	return out
}

// Reset drops every recorded edit.
func (b *EditBuilder) Reset() {
	b.edits = b.edits[:0]
}
