package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	// Color modes accepted by FormatterConfig.Color.
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	hintIcon    = "💡"
	hintIndent  = "    "
	titlePrefix = "TITLE:"
	newline     = "\n"

	colorError  = "#FF5F5F"
	colorMuted  = "#808080"
	colorHeader = "#5FD75F"
	colorBorder = "#5F87FF"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose enables the context table and full error chain output.
	Verbose bool

	// Color controls color output: "auto", "always", or "never".
	Color string

	// MaxLineLength is the maximum length before wrapping (default: 80).
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       false,
		Color:         ColorAuto,
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format formats an error for display: optional title, the message, hints and,
// in verbose mode, the safe context and the error chain with stack traces.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)

	errorStyle := lipgloss.NewStyle()
	titleStyle := lipgloss.NewStyle().Bold(true)
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color(colorError))
		titleStyle = titleStyle.Foreground(lipgloss.Color(colorError))
	}

	var output strings.Builder

	title, hints := splitHints(errors.GetAllHints(err))
	if title != "" {
		output.WriteString(titleStyle.Render(title))
		output.WriteString(newline)
	}

	mainMsg := err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		output.WriteString(errorStyle.Render(wrapText(mainMsg, config.MaxLineLength)))
	} else {
		output.WriteString(errorStyle.Render(mainMsg))
	}

	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString(hintIndent + hintIcon + " " + hint)
			output.WriteString(newline)
		}
	}

	if config.Verbose {
		if contextTable := formatContextTable(err, useColor); contextTable != "" {
			output.WriteString(contextTable)
			output.WriteString(newline)
		}
		output.WriteString(newline)
		output.WriteString(formatStackTrace(err, useColor))
	}

	return output.String()
}

// splitHints separates the title marker from regular hints.
func splitHints(all []string) (string, []string) {
	var title string
	hints := make([]string, 0, len(all))
	for _, hint := range all {
		if strings.HasPrefix(hint, titlePrefix) {
			title = strings.TrimPrefix(hint, titlePrefix)
			continue
		}
		hints = append(hints, hint)
	}
	return title, hints
}

// formatContextTable creates a styled 2-column table for error context.
func formatContextTable(err error, useColor bool) string {
	// Parse "widget=timer state=Idle" format into key-value pairs.
	var rows [][]string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Split(detail, " ") {
				if parts := strings.SplitN(pair, "=", 2); len(parts) == 2 {
					rows = append(rows, []string{parts[0], parts[1]})
				}
			}
		}
	}

	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.ThickBorder()).
		Headers("Context", "Value").
		Rows(rows...)

	if useColor {
		t = t.
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colorBorder))).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
				if row == table.HeaderRow {
					return style.Foreground(lipgloss.Color(colorHeader)).Bold(true)
				}
				if col == 0 {
					return style.Foreground(lipgloss.Color(colorMuted))
				}
				return style
			})
	}

	return newline + t.String()
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range strings.Fields(text) {
		if currentLine.Len() > 0 && currentLine.Len()+1+len(word) > width {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, newline)
}

// formatStackTrace formats the full error chain with stack traces.
func formatStackTrace(err error, useColor bool) string {
	style := lipgloss.NewStyle()
	if useColor {
		style = style.Foreground(lipgloss.Color(colorMuted))
	}
	return style.Render(fmt.Sprintf("%+v", err))
}
