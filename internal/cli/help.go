package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
)

// HelpFormatter renders cobra help with the same lipgloss palette the
// console reporter uses: headings like file paths, flags like rule names.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const helpTemplate = `{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ command (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":                 h.styles.SummaryTitle.Render,
		"command":                 h.styles.FilePath.Render,
		"dim":                     h.styles.Dim.Render,
		"flags":                   h.styleFlags,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

// styleFlags colors the flag names of pflag's usage block. Each line is
// "  -x, --name type   description"; the names end at the first run of
// two spaces.
func (h *HelpFormatter) styleFlags(usages string) string {
	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		end := strings.Index(trimmed, "  ")
		if end <= 0 {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		lines[i] = indent + h.styleFlagNames(trimmed[:end]) + trimmed[end:]
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) styleFlagNames(part string) string {
	fields := strings.Fields(part)
	for i, field := range fields {
		style := h.styles.Dim
		if strings.HasPrefix(field, "-") {
			style = h.styles.RuleID.Inherit(lipgloss.NewStyle().Bold(true))
		}
		name, comma := strings.CutSuffix(field, ",")
		fields[i] = style.Render(name)
		if comma {
			fields[i] += ","
		}
	}
	return strings.Join(fields, " ")
}

// ApplyToCommand installs the styled help on cmd and its subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	tmpl := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpTemplate))

	render := func(command *cobra.Command) error {
		return tmpl.Execute(command.OutOrStdout(), command)
	}
	cmd.SetUsageFunc(render)
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// rpad adds padding to the right of a string.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
