package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/lint/rules"
)

func TestMaximumLineLength(t *testing.T) {
	t.Parallel()

	long := "var a = '" + strings.Repeat("x", 30) + "';"

	tests := []struct {
		name   string
		option string
		source string
		want   int
	}{
		{name: "short lines", option: `40`, source: "var a = 1;\nvar b = 2;", want: 0},
		{name: "long line", option: `20`, source: long, want: 1},
		{name: "exactly at limit", option: `10`, source: "var a = 1;", want: 0},
		{name: "tab counts as tabSize", option: `{"value": 10, "tabSize": 4}`, source: "if (a) {\n\t\tb = 1;\n}", want: 1},
		{name: "tab counts as one by default", option: `{"value": 10}`, source: "if (a) {\n\t\tb = 1;\n}", want: 0},
		{
			name:   "comments excepted",
			option: `{"value": 20, "allExcept": ["comments"]}`,
			source: "// " + strings.Repeat("c", 40) + "\nvar a = 1;",
			want:   0,
		},
		{
			name:   "url comments excepted",
			option: `{"value": 20, "allExcept": ["urlComments"]}`,
			source: "// see https://example.com/a/very/long/path/to/something\n// " + strings.Repeat("c", 40),
			want:   1,
		},
		{
			name:   "regex excepted",
			option: `{"value": 20, "allExcept": ["regex"]}`,
			source: "var re = /" + strings.Repeat("a", 30) + "/;",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := checkSource(t, `{"maximumLineLength": `+tt.option+`}`, tt.source)
			assert.Len(t, errs, tt.want)
		})
	}
}

func TestMaximumLineLength_Message(t *testing.T) {
	t.Parallel()

	errs := checkSource(t, `{"maximumLineLength": 5}`, "var a;\nb;")
	require.Len(t, errs, 1)
	assert.Equal(t, "Line must be at most 5 characters", errs[0].Message)
	assert.Equal(t, 1, errs[0].Line)
	assert.Equal(t, 6, errs[0].Column)
}

func TestMaximumLineLength_Configure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "number", value: 80},
		{name: "zero", value: 0, wantErr: true},
		{name: "string", value: "80", wantErr: true},
		{name: "unknown exception", value: mustSettings(t, `{"value": 80, "allExcept": ["nope"]}`), wantErr: true},
		{name: "object", value: mustSettings(t, `{"value": 80, "tabSize": 2}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := rules.NewMaximumLineLengthRule().Configure(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
