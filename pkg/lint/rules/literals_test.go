package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisallowTrailingComma(t *testing.T) {
	t.Parallel()

	const msg = "Extra comma following the final element of an array or object literal"

	tests := []struct {
		name   string
		source string
		want   int
	}{
		{name: "array", source: "var a = [1, 2,];", want: 1},
		{name: "object", source: "var o = {a: 1,};", want: 1},
		{name: "multiline object", source: "var o = {\n  a: 1,\n};", want: 1},
		{name: "no trailing comma", source: "var a = [1, 2];\nvar o = {a: 1};", want: 0},
		{name: "empty literals", source: "var a = [];\nvar o = {};", want: 0},
		{name: "comma before comment", source: "var a = [1, /* c */];", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := checkSource(t, `{"disallowTrailingComma": true}`, tt.source)
			assert.Len(t, errs, tt.want)
			for _, e := range errs {
				assert.Equal(t, msg, e.Message)
			}
		})
	}
}

func TestDisallowTrailingComma_Fix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "array", source: "[1, 2,]", want: "[1, 2]"},
		{name: "object", source: "x = {a: 1,};", want: "x = {a: 1};"},
		{name: "nested", source: "x = [{a: 1,},];", want: "x = [{a: 1}];"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, remaining := fixSource(t, `{"disallowTrailingComma": true}`, tt.source)
			assert.Equal(t, tt.want, out)
			assert.Empty(t, remaining)
		})
	}
}

func TestValidateQuoteMarks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		option string
		source string
		want   int
	}{
		{name: "double required", option: `"\""`, source: "var a = 'x';", want: 1},
		{name: "double used", option: `"\""`, source: `var a = "x";`, want: 0},
		{name: "single required", option: `"'"`, source: `var a = "x", b = 'y';`, want: 1},
		{name: "consistent with first", option: `true`, source: `var a = "x"; var b = 'y'; var c = "z";`, want: 1},
		{name: "consistent", option: `true`, source: `var a = 'x'; var b = 'y';`, want: 0},
		{name: "escape allows other mark", option: `{"mark": "\"", "escape": true}`, source: `var a = 'say "hi"';`, want: 0},
		{name: "escape still reports plain", option: `{"mark": "\"", "escape": true}`, source: `var a = 'hi';`, want: 1},
		{name: "templates ignored", option: `"\""`, source: "var a = `x`;", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := checkSource(t, `{"validateQuoteMarks": `+tt.option+`}`, tt.source)
			assert.Len(t, errs, tt.want)
			for _, e := range errs {
				assert.Equal(t, "Invalid quote mark found", e.Message)
			}
		})
	}
}

func TestValidateQuoteMarks_Fix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		option string
		source string
		want   string
	}{
		{name: "to double", option: `"\""`, source: "a('x');", want: `a("x");`},
		{name: "to single", option: `"'"`, source: `a("x");`, want: "a('x');"},
		{name: "escapes inner mark", option: `"\""`, source: `a('say "hi"');`, want: `a("say \"hi\"");`},
		{name: "unescapes old mark", option: `"\""`, source: `a('it\'s');`, want: `a("it's");`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, remaining := fixSource(t, `{"validateQuoteMarks": `+tt.option+`}`, tt.source)
			assert.Equal(t, tt.want, out)
			assert.Empty(t, remaining)
		})
	}
}
