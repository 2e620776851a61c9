package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
)

func TestFormatExcerpt_SingleLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	got := styles.FormatExcerpt(pretty.Excerpt{
		Rule:     "disallowKeywords",
		Message:  "Illegal keyword: with",
		Filename: "input",
		Lines:    []pretty.ExcerptLine{{Number: 1, Text: "with (x) {}"}},
		Line:     1,
		Column:   0,
	})

	assert.Equal(t, "disallowKeywords: Illegal keyword: with at input :\n     1 |with (x) {}\n----------^", got)
}

func TestFormatExcerpt_PointerAfterOffendingLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	got := styles.FormatExcerpt(pretty.Excerpt{
		Rule:     "r",
		Message:  "m",
		Filename: "f.js",
		Lines: []pretty.ExcerptLine{
			{Number: 9, Text: "a"},
			{Number: 10, Text: "  bb"},
			{Number: 11, Text: "c"},
		},
		Line:   10,
		Column: 2,
	})

	want := "r: m at f.js :\n" +
		"     9 |a\n" +
		"    10 |  bb\n" +
		"------------^\n" +
		"    11 |c"
	assert.Equal(t, want, got)
}

func TestFormatLocation(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.js:3:7", styles.FormatLocation("a.js", 3, 7))
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.js", styles.FormatFileHeader("a.js", 0))
	assert.Equal(t, "a.js (2 errors)", styles.FormatFileHeader("a.js", 2))
}
