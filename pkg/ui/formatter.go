package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
)

// plainMarkdownStyle is the glamour style used when color is off.
var plainMarkdownStyle = "notty"

const (
	newline           = "\n"
	iconMessageFormat = "%s %s"

	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "⚠"
	IconInfo    = "ℹ"
	IconBell    = "🔔"
	IconClock   = "⏰"
)

// Formatter renders status messages, toasts and markdown.
// It returns strings; the package-level helpers write them to the UI stream.
type Formatter struct {
	out    io.Writer
	styles *theme.StyleSet
	color  bool
	width  int
}

// Options configure a Formatter.
type Options struct {
	// Out is the UI stream. Defaults to stderr.
	Out    io.Writer
	Styles *theme.StyleSet
	Color  bool
	// Width wraps markdown; zero disables wrapping.
	Width int
}

var (
	globalFormatter *Formatter
	formatterMu     sync.RWMutex
)

// NewFormatter creates a Formatter. Nil styles fall back to the default dark theme.
func NewFormatter(opts Options) *Formatter {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	styles := opts.Styles
	if styles == nil {
		scheme, err := theme.GetColorSchemeForTheme(theme.DefaultDarkTheme)
		if err == nil {
			styles = theme.GetStyles(scheme)
		} else {
			styles = &theme.StyleSet{}
		}
	}
	return &Formatter{out: out, styles: styles, color: opts.Color, width: opts.Width}
}

// InitFormatter installs the global formatter used by the package-level helpers.
// This should be called once at startup.
func InitFormatter(opts Options) *Formatter {
	f := NewFormatter(opts)
	formatterMu.Lock()
	globalFormatter = f
	formatterMu.Unlock()
	return f
}

func getFormatter() *Formatter {
	formatterMu.RLock()
	f := globalFormatter
	formatterMu.RUnlock()
	if f == nil {
		return InitFormatter(Options{})
	}
	return f
}

// Styles returns the active style set.
func (f *Formatter) Styles() *theme.StyleSet {
	return f.styles
}

// StatusMessage formats "{icon} {text}", coloring only the icon.
func (f *Formatter) StatusMessage(icon string, style *lipgloss.Style, text string) string {
	if !f.color || style == nil {
		return fmt.Sprintf(iconMessageFormat, icon, text)
	}
	return fmt.Sprintf(iconMessageFormat, style.Render(icon), text)
}

func (f *Formatter) Success(text string) string {
	return f.StatusMessage(IconSuccess, &f.styles.Success, text)
}

func (f *Formatter) Error(text string) string {
	return f.StatusMessage(IconError, &f.styles.Error, text)
}

func (f *Formatter) Warning(text string) string {
	return f.StatusMessage(IconWarning, &f.styles.Warning, text)
}

func (f *Formatter) Info(text string) string {
	return f.StatusMessage(IconInfo, &f.styles.Info, text)
}

// Toast formats a transient notification with a custom icon.
// Continuation lines are indented under the message.
func (f *Formatter) Toast(icon, message string) string {
	lines := strings.Split(strings.TrimRight(message, newline), newline)
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", lipgloss.Width(icon)+1) + lines[i]
	}
	text := strings.Join(lines, newline)
	if f.color {
		return f.styles.ToastStyle.Render(icon+" "+text) + newline
	}
	return fmt.Sprintf(iconMessageFormat, icon, text) + newline
}

// Markdown renders markdown with glamour. Rendering failures degrade to the raw content.
func (f *Formatter) Markdown(content string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithEmoji()}
	if f.width > 0 {
		opts = append(opts, glamour.WithWordWrap(f.width))
	}
	if f.color {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(plainMarkdownStyle))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content, markdownError(err)
	}
	defer renderer.Close()

	rendered, err := renderer.Render(content)
	if err != nil {
		return content, markdownError(err)
	}
	return rendered, nil
}

func markdownError(cause error) error {
	return errUtils.Build(errUtils.ErrRenderMarkdown).
		WithExplanation(cause.Error()).
		WithHint("Run with --no-color to print the plain text").
		Err()
}

func (f *Formatter) write(text string) error {
	_, err := io.WriteString(f.out, text)
	return err
}

// Success writes a success message to the UI stream.
func Success(text string) error {
	f := getFormatter()
	return f.write(f.Success(text) + newline)
}

// Successf writes a formatted success message to the UI stream.
func Successf(format string, a ...interface{}) error {
	return Success(fmt.Sprintf(format, a...))
}

// Error writes an error message to the UI stream.
func Error(text string) error {
	f := getFormatter()
	return f.write(f.Error(text) + newline)
}

// Warning writes a warning message to the UI stream.
func Warning(text string) error {
	f := getFormatter()
	return f.write(f.Warning(text) + newline)
}

// Info writes an informational message to the UI stream.
func Info(text string) error {
	f := getFormatter()
	return f.write(f.Info(text) + newline)
}

// Infof writes a formatted informational message to the UI stream.
func Infof(format string, a ...interface{}) error {
	return Info(fmt.Sprintf(format, a...))
}

// Toast writes a toast with a custom icon to the UI stream.
func Toast(icon, message string) error {
	f := getFormatter()
	return f.write(f.Toast(icon, message))
}

// Toastf writes a formatted toast to the UI stream.
func Toastf(icon, format string, a ...interface{}) error {
	return Toast(icon, fmt.Sprintf(format, a...))
}

// Write writes plain text to the UI stream.
func Write(text string) error {
	return getFormatter().write(text)
}

// Writeln writes text followed by a newline to the UI stream.
func Writeln(text string) error {
	return Write(text + newline)
}

// RenderMarkdown renders content with the global formatter's color and width.
// On failure it returns content unchanged along with the error.
func RenderMarkdown(content string) (string, error) {
	return getFormatter().Markdown(content)
}
