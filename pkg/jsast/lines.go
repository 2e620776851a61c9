package jsast

import (
	"sort"
	"unicode/utf8"
)

// LineInfo describes a single line of the source.
type LineInfo struct {
	// Start is the byte offset of the first character of the line.
	Start int

	// End is the byte offset just past the last character before the
	// line break.
	End int

	// Break is the line break sequence terminating the line.
	// Empty for the last line.
	Break string
}

// BuildLines splits content into lines. Recognised line breaks are
// "\r\n", "\n", "\r", U+2028 and U+2029. The result always contains at
// least one line, and a trailing break produces a final empty line.
func BuildLines(content []byte) []LineInfo {
	lines := make([]LineInfo, 0, 16)
	start := 0

	for idx := 0; idx < len(content); {
		brk := lineBreakAt(content, idx)
		if brk == 0 {
			_, size := utf8.DecodeRune(content[idx:])
			idx += size
			continue
		}

		lines = append(lines, LineInfo{
			Start: start,
			End:   idx,
			Break: string(content[idx : idx+brk]),
		})
		idx += brk
		start = idx
	}

	lines = append(lines, LineInfo{Start: start, End: len(content)})
	return lines
}

// lineBreakAt returns the byte length of the line break starting at idx,
// or 0 if there is none.
func lineBreakAt(content []byte, idx int) int {
	switch content[idx] {
	case '\n':
		return 1
	case '\r':
		if idx+1 < len(content) && content[idx+1] == '\n' {
			return 2
		}
		return 1
	case 0xE2:
		// U+2028 and U+2029 encode as E2 80 A8 / E2 80 A9.
		if idx+2 < len(content) && content[idx+1] == 0x80 &&
			(content[idx+2] == 0xA8 || content[idx+2] == 0xA9) {
			return 3
		}
	}
	return 0
}

// LineIndex maps byte offsets to positions.
type LineIndex struct {
	content []byte
	lines   []LineInfo
}

// NewLineIndex builds a LineIndex for content.
func NewLineIndex(content []byte) *LineIndex {
	return &LineIndex{content: content, lines: BuildLines(content)}
}

// Lines returns the line metadata. Callers must not modify it.
func (li *LineIndex) Lines() []LineInfo {
	return li.lines
}

// Position converts a byte offset into a Position.
// Offsets past the end clamp to the end of the content.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.content) {
		offset = len(li.content)
	}

	// Find the last line whose start is <= offset.
	idx := sort.Search(len(li.lines), func(i int) bool {
		return li.lines[i].Start > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}

	line := li.lines[idx]
	end := min(offset, line.End)
	column := utf8.RuneCount(li.content[line.Start:end])
	if offset > line.End {
		// Offset points inside the line break itself.
		column++
	}

	return Position{Line: idx + 1, Column: column}
}

// Offset converts a Position back into a byte offset.
// Returns -1 if the position is outside the content.
func (li *LineIndex) Offset(pos Position) int {
	if pos.Line < 1 || pos.Line > len(li.lines) || pos.Column < 0 {
		return -1
	}

	line := li.lines[pos.Line-1]
	offset := line.Start
	for col := 0; col < pos.Column; col++ {
		if offset >= line.End {
			return -1
		}
		_, size := utf8.DecodeRune(li.content[offset:])
		offset += size
	}
	return offset
}
