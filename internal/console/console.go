package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 84

// DefaultToolName prefixes usage lines.
const DefaultToolName = "steamer"

// Color names accepted by Log.
const (
	Black   = "black"
	Red     = "red"
	Green   = "green"
	Yellow  = "yellow"
	Blue    = "blue"
	Magenta = "magenta"
	Cyan    = "cyan"
	White   = "white"
	Gray    = "gray"
)

var ansiColors = map[string]string{
	Black:   "0",
	Red:     "1",
	Green:   "2",
	Yellow:  "3",
	Blue:    "4",
	Magenta: "5",
	Cyan:    "6",
	White:   "7",
	Gray:    "8",
	"grey":  "8",
}

// Reporter prints colored status text.
type Reporter struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	profile  *termenv.Profile
	width    int
	toolName string
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithWriter sets the output destination. Defaults to os.Stdout.
func WithWriter(w io.Writer) ReporterOption {
	return func(r *Reporter) { r.w = w }
}

// WithWidth fixes the rule width instead of detecting it from the terminal.
func WithWidth(n int) ReporterOption {
	return func(r *Reporter) { r.width = n }
}

// WithColorProfile forces a color profile, e.g. termenv.Ascii to disable colors.
func WithColorProfile(p termenv.Profile) ReporterOption {
	return func(r *Reporter) { r.profile = &p }
}

// WithToolName sets the command prefix used by PrintUsage.
func WithToolName(name string) ReporterOption {
	return func(r *Reporter) { r.toolName = name }
}

// New returns a Reporter writing to stdout unless configured otherwise.
func New(opts ...ReporterOption) *Reporter {
	r := &Reporter{
		w:        os.Stdout,
		toolName: DefaultToolName,
	}
	for _, opt := range opts {
		opt(r)
	}
	// The renderer detects the color profile from the final writer.
	r.renderer = lipgloss.NewRenderer(r.w)
	if r.profile != nil {
		r.renderer.SetColorProfile(*r.profile)
	}
	return r
}

// Writer returns the destination of all output.
func (r *Reporter) Writer() io.Writer {
	return r.w
}

// Width returns the rule width: the fixed width when set, the terminal width
// when the writer is a terminal, DefaultWidth otherwise.
func (r *Reporter) Width() int {
	if r.width > 0 {
		return r.width
	}
	if f, ok := r.w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				return w
			}
		}
	}
	return DefaultWidth
}

// Colorize applies a named color without printing.
func (r *Reporter) Colorize(s, color string) string {
	if color == "" {
		color = White
	}
	code, ok := ansiColors[strings.ToLower(color)]
	if !ok {
		return s
	}
	style := r.renderer.NewStyle().
		TabWidth(lipgloss.NoTabConversion).
		Foreground(lipgloss.Color(code))
	// Multi-line blocks would be padded to a common width; style each line alone.
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Log renders v in the named color, prints it as one line and returns the
// rendered text. Structured values are printed as compact JSON.
func (r *Reporter) Log(v any, color string) string {
	msg := r.Colorize(stringify(v), color)
	fmt.Fprintln(r.w, msg)
	return msg
}

// Error prints v in red.
func (r *Reporter) Error(v any) string {
	return r.Log(v, Red)
}

// Info prints v in cyan.
func (r *Reporter) Info(v any) string {
	return r.Log(v, Cyan)
}

// Warn prints v in yellow.
func (r *Reporter) Warn(v any) string {
	return r.Log(v, Yellow)
}

// Success prints v in green.
func (r *Reporter) Success(v any) string {
	return r.Log(v, Green)
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
