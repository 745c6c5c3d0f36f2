package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// optionGutter separates the option column from the description column.
const optionGutter = "    "

// optionIndent prefixes every option row.
const optionIndent = "    "

// Option describes one command-line option for PrintOption.
type Option struct {
	Option      string `json:"option"`
	Alias       string `json:"alias,omitempty"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description"`
}

// Label returns the option column: "--<option>[, -<alias>][ <value>]".
func (o Option) Label() string {
	var sb strings.Builder
	sb.WriteString("--")
	sb.WriteString(o.Option)
	if o.Alias != "" {
		sb.WriteString(", -")
		sb.WriteString(o.Alias)
	}
	if o.Value != "" {
		sb.WriteString(" ")
		sb.WriteString(o.Value)
	}
	return sb.String()
}

// PrintTitle centers " text " inside a rule of "=" as wide as the terminal.
// When the padding does not split evenly the extra "=" goes on the left.
func (r *Reporter) PrintTitle(text, color string) string {
	title := " " + text + " "
	total := r.Width() - runewidth.StringWidth(title)
	if total < 0 {
		total = 0
	}
	right := total / 2
	left := total - right
	return r.Log(strings.Repeat("=", left)+title+strings.Repeat("=", right), color)
}

// PrintEnd prints a full-width rule of "=".
func (r *Reporter) PrintEnd(color string) string {
	return r.Log(strings.Repeat("=", r.Width()), color)
}

// PrintUsage prints "<tool> <command>    <description>" under a usage header.
func (r *Reporter) PrintUsage(description, command string) string {
	var sb strings.Builder
	sb.WriteString(r.Colorize("\nusage: \n", Green))
	sb.WriteString(r.toolName + " " + command + optionGutter + description + "\n")
	return r.Info(sb.String())
}

// PrintOption prints an aligned two-column option table. Every description
// starts at the widest option label plus the gutter.
func (r *Reporter) PrintOption(options []Option) string {
	labels := make([]string, len(options))
	maxWidth := 0
	for i, o := range options {
		labels[i] = optionIndent + o.Label()
		if w := runewidth.StringWidth(labels[i]); w > maxWidth {
			maxWidth = w
		}
	}

	var sb strings.Builder
	sb.WriteString(r.Colorize("options: \n", Green))
	for i, o := range options {
		sb.WriteString(runewidth.FillRight(labels[i], maxWidth) + optionGutter + o.Description + "\n")
	}
	return r.Info(sb.String())
}
