package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
)

func TestTableFormatter_FormatTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 120)
	out := formatter.FormatTable([][]pretty.TableRow{
		{
			{File: "a.js", Line: 1, Column: 0, Message: "Illegal keyword: with", Rule: "disallowKeywords"},
			{File: "a.js", Line: 3, Column: 7, Message: "Multiple line break", Rule: "disallowMultipleLineBreaks"},
		},
		nil,
		{
			{File: "b.js", Line: 2, Column: 4, Message: "Illegal trailing whitespace", Rule: "disallowTrailingWhitespace", Fixable: true},
		},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "RULE")
	assert.True(t, strings.HasPrefix(lines[1], "====="))
	assert.Contains(t, lines[2], "Illegal keyword: with")
	assert.Contains(t, lines[3], "3:7")
	assert.True(t, strings.HasPrefix(lines[4], "-----"))
	assert.True(t, strings.HasSuffix(lines[5], "+"))
	assert.Equal(t, " Legend: + = fixable", lines[7])
}

func TestTableFormatter_Empty(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)
	assert.Empty(t, formatter.FormatTable(nil))
	assert.Empty(t, formatter.FormatTable([][]pretty.TableRow{nil, {}}))
}

func TestTableFormatter_TruncatesToWidth(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 80)
	long := strings.Repeat("x", 200)
	out := formatter.FormatTable([][]pretty.TableRow{{
		{File: "src/" + long + ".js", Line: 1, Message: long, Rule: "r"},
	}})

	assert.Contains(t, out, "...")
	assert.Contains(t, out, ".js")
}

func TestTableFormatter_FormatTableSummary(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)
	assert.Equal(t, " 3 files checked | 2 errors | 1 fixed",
		formatter.FormatTableSummary(pretty.RunStats{Files: 3, Errors: 2, Fixed: 1}))
	assert.Equal(t, " 1 file checked", formatter.FormatTableSummary(pretty.RunStats{Files: 1}))
}
