package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const sourceMaxLen = 50

// ListThemesOptions contains options for listing themes.
type ListThemesOptions struct {
	RecommendedOnly bool
	ActiveTheme     string
	// Styled renders a colored table; otherwise plain text is produced.
	Styled bool
}

// ListThemesResult contains the formatted output for theme listing.
type ListThemesResult struct {
	Output     string
	ThemeCount int
}

// ListThemes generates a formatted list of available themes.
func ListThemes(opts ListThemesOptions) (ListThemesResult, error) {
	registry, err := NewRegistry()
	if err != nil {
		return ListThemesResult{}, err
	}

	themes := registry.List()
	if opts.RecommendedOnly {
		themes = filterRecommended(themes, opts.ActiveTheme)
	}
	showStars := !opts.RecommendedOnly

	var output string
	if opts.Styled {
		scheme := GenerateColorScheme(registry.GetOrDefault(opts.ActiveTheme))
		output = formatThemeTable(themes, opts.ActiveTheme, showStars, GetStyles(&scheme))
	} else {
		output = formatSimpleThemeList(themes, opts.ActiveTheme, opts.RecommendedOnly, showStars)
	}

	return ListThemesResult{Output: output, ThemeCount: len(themes)}, nil
}

// filterRecommended returns only recommended themes, keeping the active theme in the list.
func filterRecommended(themes []*Theme, activeTheme string) []*Theme {
	var recommended []*Theme
	hasActive := false

	for _, t := range themes {
		if IsRecommended(t.Name) {
			recommended = append(recommended, t)
			if strings.EqualFold(t.Name, activeTheme) {
				hasActive = true
			}
		}
	}

	if activeTheme != "" && !hasActive {
		for _, t := range themes {
			if strings.EqualFold(t.Name, activeTheme) {
				recommended = append(recommended, t)
				break
			}
		}
	}

	sort.Slice(recommended, func(i, j int) bool {
		return strings.ToLower(recommended[i].Name) < strings.ToLower(recommended[j].Name)
	})
	return recommended
}

func statusIndicator(t *Theme, activeTheme string, showStars bool) string {
	switch {
	case strings.EqualFold(t.Name, activeTheme):
		return IconActive
	case showStars && IsRecommended(t.Name):
		return IconRecommended
	default:
		return ""
	}
}

// formatThemeTable formats themes into a styled lipgloss table.
func formatThemeTable(themes []*Theme, activeTheme string, showStars bool, styles *StyleSet) string {
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, []string{
			statusIndicator(t, activeTheme, showStars),
			t.Name,
			getThemeTypeString(t),
			formatColorPalette(t),
			truncate(getThemeSourceString(t), sourceMaxLen),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		BorderColumn(false).
		BorderStyle(styles.TableEdge).
		Headers("", "Name", "Type", "Palette", "Source").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHead
			}
			if col == 0 && row >= 0 && row < len(rows) && rows[row][0] == IconActive {
				return styles.Success.PaddingRight(1)
			}
			return styles.TableRow
		})

	return tbl.String() + "\n"
}

// formatSimpleThemeList formats themes as plain text for non-TTY output.
func formatSimpleThemeList(themes []*Theme, activeTheme string, recommendedOnly bool, showStars bool) string {
	const lineWidth = 80

	var output strings.Builder
	output.WriteString(fmt.Sprintf("  %-24s %-6s %s\n", "Name", "Type", "Source"))
	output.WriteString(strings.Repeat("=", lineWidth) + "\n")

	for _, t := range themes {
		indicator := statusIndicator(t, activeTheme, showStars)
		if indicator == "" {
			indicator = " "
		}
		output.WriteString(fmt.Sprintf("%s %-24s %-6s %s\n", indicator, t.Name, getThemeTypeString(t), getThemeSourceString(t)))
	}

	output.WriteString(fmt.Sprintf("\n%d theme", len(themes)))
	if len(themes) != 1 {
		output.WriteString("s")
	}
	if recommendedOnly {
		output.WriteString(" (recommended). Use without --recommended to see all themes.\n")
	} else {
		output.WriteString(" available.")
		if showStars {
			output.WriteString(" " + IconRecommended + " indicates recommended themes.")
		}
		output.WriteString("\n")
	}
	if activeTheme != "" {
		output.WriteString(fmt.Sprintf("Active theme: %s\n", activeTheme))
	}

	return output.String()
}

// getThemeTypeString returns "Dark" or "Light" based on theme metadata.
func getThemeTypeString(t *Theme) string {
	if t.Meta.IsDark {
		return "Dark"
	}
	return "Light"
}

// getThemeSourceString extracts the source information from theme credits.
func getThemeSourceString(t *Theme) string {
	if t.Meta.Credits != nil && len(*t.Meta.Credits) > 0 {
		credits := *t.Meta.Credits
		if credits[0].Link != "" {
			return credits[0].Link
		}
		return credits[0].Name
	}
	return ""
}

// formatColorPalette renders the main colors as a strip of blocks.
func formatColorPalette(t *Theme) string {
	var result strings.Builder
	for _, hexColor := range []string{t.Background, t.Foreground, t.Red, t.Green, t.Yellow, t.Blue, t.Magenta, t.Cyan} {
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render("█"))
	}
	return result.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
