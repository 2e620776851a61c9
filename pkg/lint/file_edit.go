package lint

import (
	"github.com/yaklabco/gojscs/pkg/fix"
	"github.com/yaklabco/gojscs/pkg/jsast"
)

// The methods in this file are for the fix phase only. They record edits
// against the original source offsets; the edits are applied once every
// fix of the pass has run. Token pointers obtained before a RemoveToken
// call are stale afterwards.

// RemoveToken deletes tok from the source and from the token array.
func (f *File) RemoveToken(tok *jsast.Token) {
	if tok == nil || tok.Index < 0 || tok.Index >= len(f.tokens) {
		return
	}
	idx := tok.Index
	f.edits.Delete(tok.Range.Start, tok.Range.End)

	f.tokens = append(f.tokens[:idx], f.tokens[idx+1:]...)
	for i := idx; i < len(f.tokens); i++ {
		f.tokens[i].Index = i
	}
	f.invalidate()
}

// SetWhitespaceBefore replaces the whitespace between tok and the token
// before it with ws. Comments in between are kept untouched.
func (f *File) SetWhitespaceBefore(tok *jsast.Token, ws string) {
	if tok == nil {
		return
	}
	start := 0
	if prev := f.GetPrevToken(tok, IncludeComments()); prev != nil {
		start = prev.Range.End
	}
	f.edits.ReplaceRange(start, tok.Range.Start, ws)
}

// SetWhitespaceAfter replaces the whitespace between tok and the token
// after it with ws.
func (f *File) SetWhitespaceAfter(tok *jsast.Token, ws string) {
	if next := f.GetNextToken(tok, IncludeComments()); next != nil {
		f.SetWhitespaceBefore(next, ws)
		return
	}
	if tok != nil {
		f.edits.ReplaceRange(tok.Range.End, len(f.program.Source), ws)
	}
}

// ReplaceRange replaces the source bytes [start, end) with text.
func (f *File) ReplaceRange(start, end int, text string) {
	f.edits.ReplaceRange(start, end, text)
	f.invalidate()
}

// Edits returns the edits recorded so far.
func (f *File) Edits() []fix.TextEdit {
	return f.edits.Edits()
}

// HasEdits reports whether any edit was recorded.
func (f *File) HasEdits() bool {
	return f.edits.Len() > 0
}

// ApplyEdits applies the recorded edits to the original source.
func (f *File) ApplyEdits() ([]byte, fix.Result, error) {
	return fix.Apply(f.program.Source, f.edits.Edits())
}

func (f *File) invalidate() {
	f.cache.invalidateTokens()
	f.comments = nil
	f.lines = nil
	f.lineBreaks = nil
	f.pragmas = nil
}
