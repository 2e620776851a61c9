package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
)

// consoleStyles are the styles an explained error and its summary line
// are drawn with.
func consoleStyles(s *pretty.Styles) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"Error":      s.Error,
		"FilePath":   s.FilePath,
		"RuleID":     s.RuleID,
		"SourceLine": s.SourceLine,
		"Caret":      s.Caret,
		"DiffAdd":    s.DiffAdd,
		"DiffRemove": s.DiffRemove,
		"Success":    s.Success,
		"Failure":    s.Failure,
	}
}

func TestNewStyles_NoColorIsPlainText(t *testing.T) {
	t.Parallel()

	const line = "     3 |    with (x) {}"
	for name, style := range consoleStyles(pretty.NewStyles(false)) {
		assert.Equal(t, line, style.Render(line), name)
	}
}

func TestNewStyles_ColorKeepsText(t *testing.T) {
	t.Parallel()

	for name, style := range consoleStyles(pretty.NewStyles(true)) {
		assert.Contains(t, style.Render("disallowKeywords"), "disallowKeywords", name)
	}
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		mode    string
		noColor string
		want    bool
	}{
		{mode: "always", want: true},
		{mode: "always", noColor: "1", want: true},
		{mode: "never", want: false},
		{mode: "auto", want: false},
		{mode: "", want: false},
		{mode: "auto", noColor: "1", want: false},
	}

	for _, tt := range tests {
		name := strings.Join([]string{tt.mode, tt.noColor}, "/")
		t.Run(name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)

			// A buffer is never a terminal, so auto stays uncolored.
			var buf bytes.Buffer
			assert.Equal(t, tt.want, pretty.IsColorEnabled(tt.mode, &buf))
		})
	}
}
