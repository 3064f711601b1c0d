package theme

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	errUtils "github.com/cloudposse/ticktock/errors"
)

const (
	sectionSeparator = "\n\n"
	lineBreak        = "\n"
	previewWidth     = 72
)

// ShowThemeOptions contains options for showing theme details.
type ShowThemeOptions struct {
	ThemeName string
}

const markdownSample = `## Stopwatch

Press **space** to start, **l** to record a lap and **r** to reset.

- Lap 2 ` + "`00:00:41.20`" + `
- Lap 1 ` + "`00:00:19.85`" + `

> Timer complete!
`

// ShowTheme renders a preview of a theme: metadata, palette, a clock readout,
// log output and a markdown sample.
func ShowTheme(opts ShowThemeOptions) (string, error) {
	registry, err := NewRegistry()
	if err != nil {
		return "", err
	}

	selected, ok := registry.Get(opts.ThemeName)
	if !ok {
		return "", errUtils.Build(errUtils.ErrThemeNotFound).
			WithExplanationf("No theme named %q is bundled with ticktock.", opts.ThemeName).
			WithHint("Run `ticktock theme list` to see the available themes").
			WithContext("theme", opts.ThemeName).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	scheme := GenerateColorScheme(selected)
	styles := GetStyles(&scheme)

	var output strings.Builder
	output.WriteString(formatThemeHeader(selected, styles))
	output.WriteString(formatThemeMetadata(selected, styles))
	output.WriteString(lineBreak)

	output.WriteString(styles.Heading.Render("COLOR PALETTE"))
	output.WriteString(sectionSeparator)
	output.WriteString(FormatColorPalette(selected))
	output.WriteString(lineBreak)

	output.WriteString(styles.Heading.Render("CLOCK PREVIEW"))
	output.WriteString(sectionSeparator)
	output.WriteString(formatClockPreview(styles))
	output.WriteString(sectionSeparator)

	output.WriteString(styles.Heading.Render("LOG OUTPUT PREVIEW"))
	output.WriteString(sectionSeparator)
	output.WriteString(GenerateLogDemo(&scheme))
	output.WriteString(lineBreak)

	output.WriteString(styles.Heading.Render("MARKDOWN PREVIEW"))
	output.WriteString(sectionSeparator)
	output.WriteString(formatMarkdownPreview(selected))
	output.WriteString(lineBreak)

	output.WriteString(formatUsageInstructions(selected, styles))
	return output.String(), nil
}

// formatThemeHeader creates the header section with theme name and badges.
func formatThemeHeader(t *Theme, styles *StyleSet) string {
	header := fmt.Sprintf("Theme: %s", t.Name)
	if IsRecommended(t.Name) {
		header += " " + styles.Success.Render(IconRecommended+" Recommended")
	}
	return styles.Title.Render(header) + sectionSeparator
}

// formatThemeMetadata formats the theme's metadata information.
func formatThemeMetadata(t *Theme, styles *StyleSet) string {
	var output strings.Builder
	output.WriteString(styles.Label.Render("Type:"))
	output.WriteString(" " + getThemeTypeString(t) + lineBreak)

	if t.Meta.Credits != nil && len(*t.Meta.Credits) > 0 {
		credits := *t.Meta.Credits
		output.WriteString(styles.Label.Render("Source:"))
		output.WriteString(" " + credits[0].Name + lineBreak)
		if credits[0].Link != "" {
			output.WriteString(styles.Label.Render("Link:"))
			output.WriteString(" " + credits[0].Link + lineBreak)
		}
	}
	return output.String()
}

// formatClockPreview shows how the three widgets render their readouts.
func formatClockPreview(styles *StyleSet) string {
	clock := lipgloss.JoinVertical(lipgloss.Center,
		styles.Digits.Render("09:41:07 AM"),
		styles.Subtitle.Render("Thursday, October 15, 2026"),
	)
	stopwatch := lipgloss.JoinVertical(lipgloss.Center,
		styles.Digits.Render("00:01:02.35"),
		styles.Muted.Render("Lap 1  00:00:41.20"),
	)
	timer := lipgloss.JoinVertical(lipgloss.Center,
		styles.Digits.Render("00:04:30"),
		styles.Warning.Render("▓▓▓▓▓▓░░░░ 55%"),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Panel.Render(clock),
		styles.Panel.Render(stopwatch),
		styles.Panel.Render(timer),
	)
}

// GenerateLogDemo creates a demonstration of log output with styled levels and key-value pairs.
func GenerateLogDemo(scheme *ColorScheme) string {
	var buf bytes.Buffer

	demo := log.New(&buf)
	demo.SetStyles(GetLogStyles(scheme))
	demo.SetColorProfile(termenv.TrueColor)
	demo.SetReportTimestamp(false)
	demo.SetLevel(log.DebugLevel)

	demo.Debug("Tick delivered", "widget", "stopwatch", "elapsed_ms", 1250)
	demo.Info("Timer started", "duration", "00:05:00")
	demo.Warn("Audio unavailable", "player", "bell")
	demo.Error("Failed to persist theme", "store", "file")

	return buf.String()
}

// formatMarkdownPreview renders a sample markdown document in the theme's light/dark style.
func formatMarkdownPreview(t *Theme) string {
	style := "light"
	if t.Meta.IsDark {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(previewWidth),
	)
	if err != nil {
		return "Error rendering markdown preview\n"
	}

	rendered, err := renderer.Render(markdownSample)
	if err != nil {
		return "Error rendering markdown preview\n"
	}
	return rendered
}

// formatUsageInstructions generates the usage instructions section.
func formatUsageInstructions(t *Theme, styles *StyleSet) string {
	var footer strings.Builder
	footer.WriteString(fmt.Sprintf("To use this theme, set TICKTOCK_THEME=%q or add to ticktock.yaml:\n", t.Name))
	footer.WriteString("settings:\n")
	footer.WriteString("  terminal:\n")
	footer.WriteString(fmt.Sprintf("    theme: %q\n", t.Name))
	return styles.Footer.Render(footer.String()) + lineBreak
}

// FormatColorPalette displays each named color as a swatch with its hex value.
func FormatColorPalette(t *Theme) string {
	colors := []struct {
		name  string
		value string
	}{
		{"Background", t.Background},
		{"Foreground", t.Foreground},
		{"Black", t.Black},
		{"Red", t.Red},
		{"Green", t.Green},
		{"Yellow", t.Yellow},
		{"Blue", t.Blue},
		{"Magenta", t.Magenta},
		{"Cyan", t.Cyan},
		{"White", t.White},
	}

	var output strings.Builder
	for _, c := range colors {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(c.value)).
			Foreground(lipgloss.Color(GetContrastColor(c.value))).
			Width(12).
			Render(" " + c.value)
		output.WriteString(fmt.Sprintf("  %-12s %s\n", c.name, swatch))
	}
	return output.String()
}
