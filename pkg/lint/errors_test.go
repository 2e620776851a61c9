package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/jsast"
	"github.com/yaklabco/gojscs/pkg/lint"
)

func TestErrors_AddLocations(t *testing.T) {
	t.Parallel()

	file := parseFile(t, "var a;\n  b();")
	errs := lint.NewErrors(file)

	b := file.GetTokenByRangeStart(9)
	require.NotNil(t, b)
	decl := file.GetNodesByType(jsast.TypeVariableDeclaration)[0]

	errs.Add("at token", b)
	errs.Add("at node", decl)
	errs.AddAt("at position", 1, 4)

	list := errs.GetErrorList()
	require.Len(t, list, 3)
	assert.Equal(t, jsast.Position{Line: 2, Column: 2}, list[0].Position())
	assert.Equal(t, jsast.Position{Line: 1, Column: 0}, list[1].Position())
	assert.Equal(t, jsast.Position{Line: 1, Column: 4}, list[2].Position())
	assert.Equal(t, "input", list[0].Filename)
}

func TestErrors_MaxErrors(t *testing.T) {
	t.Parallel()

	errs := lint.NewErrors(parseFile(t, "a;"))
	errs.SetMaxErrors(2)
	for range 4 {
		errs.AddAt("x", 1, 0)
	}
	assert.Equal(t, 2, errs.GetErrorCount())
	assert.True(t, errs.MaxErrorsExceeded())

	unlimited := lint.NewErrors(parseFile(t, "a;"))
	unlimited.SetMaxErrors(0)
	for range lint.DefaultMaxErrors + 5 {
		unlimited.AddAt("x", 1, 0)
	}
	assert.Equal(t, lint.DefaultMaxErrors+5, unlimited.GetErrorCount())
	assert.False(t, unlimited.MaxErrorsExceeded())
}

func TestErrors_FilteredErrorsDoNotCountTowardsLimit(t *testing.T) {
	t.Parallel()

	errs := lint.NewErrors(parseFile(t, "a;"))
	errs.SetMaxErrors(2)
	errs.SetFilter(func(e lint.Error) bool { return e.Message != "hidden" })

	errs.AddAt("hidden", 1, 0)
	errs.AddAt("hidden", 1, 0)
	errs.AddAt("shown", 1, 0)
	errs.AddAt("shown", 1, 0)

	assert.Equal(t, 2, errs.GetErrorCount())
	assert.False(t, errs.MaxErrorsExceeded())
}

func TestErrors_Truncate(t *testing.T) {
	t.Parallel()

	errs := lint.NewErrors(parseFile(t, "a;"))
	for range 5 {
		errs.AddAt("x", 1, 0)
	}
	errs.Truncate(3)
	assert.Equal(t, 3, errs.GetErrorCount())
	assert.True(t, errs.MaxErrorsExceeded())
}

func TestAssert_Messages(t *testing.T) {
	t.Parallel()

	file := parseFile(t, "a=b;\nc\n\n\n\nd;")
	tok := func(offset int) *jsast.Token {
		t.Helper()
		tk := file.GetTokenByRangeStart(offset)
		require.NotNil(t, tk)
		return tk
	}
	a, eq, b, c, d := tok(0), tok(1), tok(2), tok(5), tok(10)

	tests := []struct {
		name   string
		assert func(*lint.Assert) bool
		want   string
	}{
		{
			name:   "same line",
			assert: func(as *lint.Assert) bool { return as.SameLine(lint.PairOptions{Token: b, NextToken: c}) },
			want:   "b and c should be on the same line",
		},
		{
			name:   "different line",
			assert: func(as *lint.Assert) bool { return as.DifferentLine(lint.PairOptions{Token: a, NextToken: eq}) },
			want:   "a and = should be on different lines",
		},
		{
			name: "whitespace between",
			assert: func(as *lint.Assert) bool {
				return as.WhitespaceBetween(lint.WhitespaceOptions{Token: a, NextToken: eq})
			},
			want: "Missing space between a and =",
		},
		{
			name: "exact spaces",
			assert: func(as *lint.Assert) bool {
				return as.WhitespaceBetween(lint.WhitespaceOptions{Token: a, NextToken: eq, Spaces: 2})
			},
			want: "2 spaces required between a and =",
		},
		{
			name: "at most lines",
			assert: func(as *lint.Assert) bool {
				return as.LinesBetween(lint.LinesOptions{Token: c, NextToken: d, AtMost: 2})
			},
			want: "Expected at most 2 lines between c and d",
		},
		{
			name: "exactly one line",
			assert: func(as *lint.Assert) bool {
				return as.LinesBetween(lint.LinesOptions{Token: c, NextToken: d, Exactly: 1})
			},
			want: "Expected 1 line between c and d",
		},
		{
			name: "custom message",
			assert: func(as *lint.Assert) bool {
				return as.LinesBetween(lint.LinesOptions{Token: c, NextToken: d, AtMost: 1, Message: "Too far"})
			},
			want: "Too far",
		},
		{
			name: "indentation",
			assert: func(as *lint.Assert) bool {
				return as.Indentation(lint.IndentationOptions{Token: d, Actual: 0, Expected: 4})
			},
			want: "Expected indentation of 4 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := lint.NewErrors(file)
			assert.False(t, tt.assert(errs.Assert()))
			list := errs.GetErrorList()
			require.Len(t, list, 1)
			assert.Equal(t, tt.want, list[0].Message)
		})
	}
}

func TestAssert_Passing(t *testing.T) {
	t.Parallel()

	file := parseFile(t, "a = b;")
	a, eq := file.GetTokenByRangeStart(0), file.GetTokenByRangeStart(2)
	errs := lint.NewErrors(file)
	as := errs.Assert()

	assert.True(t, as.SameLine(lint.PairOptions{Token: a, NextToken: eq}))
	assert.True(t, as.WhitespaceBetween(lint.WhitespaceOptions{Token: a, NextToken: eq}))
	assert.True(t, as.WhitespaceBetween(lint.WhitespaceOptions{Token: a, NextToken: eq, Spaces: 1}))
	assert.True(t, as.LinesBetween(lint.LinesOptions{Token: a, NextToken: eq, AtMost: 1}))
	assert.True(t, as.NoWhitespaceBetween(lint.NoWhitespaceOptions{Token: nil, NextToken: eq}))
	assert.True(t, errs.IsEmpty())

	assert.False(t, as.NoWhitespaceBetween(lint.NoWhitespaceOptions{Token: a, NextToken: eq}))
	list := errs.GetErrorList()
	require.Len(t, list, 1)
	assert.Equal(t, lint.AutoFix{Start: 1, End: 2, Text: ""}, list[0].Additional)
}
