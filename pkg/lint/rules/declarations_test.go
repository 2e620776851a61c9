package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisallowMultipleVarDecl(t *testing.T) {
	t.Parallel()

	const msg = "Multiple var declaration"

	tests := []struct {
		name   string
		option string
		source string
		want   int
	}{
		{name: "two declarators", option: `true`, source: "var x = 1, y = 2;", want: 1},
		{name: "separate declarations", option: `true`, source: "var x = 1;\nvar y = 2;", want: 0},
		{name: "let declarators", option: `true`, source: "let a, b;", want: 1},
		{name: "for loop allowed", option: `true`, source: "for (var i = 0, j = 1; i < j; i++) {}", want: 0},
		{name: "for loop strict", option: `"strict"`, source: "for (var i = 0, j = 1; i < j; i++) {}", want: 1},
		{name: "except undefined allows bare names", option: `"exceptUndefined"`, source: "var a, b;", want: 0},
		{name: "except undefined with initializer", option: `"exceptUndefined"`, source: "var a = 1, b;", want: 1},
		{name: "allExcept undefined", option: `{"allExcept": ["undefined"]}`, source: "var a, b = undefined;", want: 0},
		{
			name:   "allExcept require",
			option: `{"allExcept": ["require"]}`,
			source: "var fs = require('fs'), path = require('path');",
			want:   0,
		},
		{
			name:   "allExcept require mixed",
			option: `{"allExcept": ["require"]}`,
			source: "var fs = require('fs'), x = 1;",
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := checkSource(t, `{"disallowMultipleVarDecl": `+tt.option+`}`, tt.source)
			assert.Len(t, errs, tt.want)
			for _, e := range errs {
				assert.Equal(t, msg, e.Message)
			}
		})
	}
}

func TestDisallowMultipleVarDecl_ReportedAtDeclaration(t *testing.T) {
	t.Parallel()

	errs := checkSource(t, `{"disallowMultipleVarDecl": true}`, "foo();\nvar x = 1, y = 2;")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, 2, errs[0].Line)
		assert.Equal(t, 0, errs[0].Column)
	}
}
