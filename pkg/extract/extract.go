// Package extract finds JavaScript embedded in Markdown documents.
//
// Each fenced code block that holds JavaScript becomes a Block carrying
// its source and the position of its first line in the host document, so
// errors found in the block can be mapped back.
package extract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Block is a JavaScript snippet taken from a host document.
type Block struct {
	// Source is the block content with the fence indentation removed.
	Source []byte

	// Line is the 1-based host line of the first source line.
	Line int

	// Column is the 0-based host column the source lines start at.
	Column int

	// Info is the fence info string.
	Info string
}

// MapPosition converts a 1-based line and 0-based column within the block
// into host document coordinates.
func (b Block) MapPosition(line, column int) (int, int) {
	return line + b.Line - 1, column + b.Column
}

// Extractor pulls JavaScript blocks out of Markdown.
type Extractor struct {
	md goldmark.Markdown
}

// New creates an Extractor using CommonMark parsing.
func New() *Extractor {
	return &Extractor{md: goldmark.New()}
}

// Markdown returns the JavaScript fenced blocks of content in document
// order.
func (e *Extractor) Markdown(ctx context.Context, content []byte) ([]Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract cancelled: %w", err)
	}

	doc := e.md.Parser().Parse(text.NewReader(content))
	starts := lineStarts(content)

	var blocks []Block
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if block, ok := fencedBlock(fcb, content, starts); ok {
			blocks = append(blocks, block)
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}
	return blocks, nil
}

func fencedBlock(fcb *ast.FencedCodeBlock, content []byte, starts []int) (Block, bool) {
	lines := fcb.Lines()
	if lines.Len() == 0 {
		return Block{}, false
	}

	var info string
	if fcb.Info != nil {
		info = string(fcb.Info.Segment.Value(content))
	}

	var src bytes.Buffer
	for i := range lines.Len() {
		seg := lines.At(i)
		src.Write(seg.Value(content))
	}
	if !IsJavaScript(info, src.Bytes()) {
		return Block{}, false
	}

	first := lines.At(0)
	line := lineOf(starts, first.Start)
	return Block{
		Source: src.Bytes(),
		Line:   line,
		Column: first.Start - starts[line-1],
		Info:   info,
	}, true
}

// lineStarts returns the byte offset at which each line begins.
func lineStarts(content []byte) []int {
	starts := []int{0}
	for i, c := range content {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineOf returns the 1-based line containing offset.
func lineOf(starts []int, offset int) int {
	lo, hi := 0, len(starts)
	for lo < hi {
		mid := (lo + hi) / 2
		if starts[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
