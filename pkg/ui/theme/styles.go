package theme

import "github.com/charmbracelet/lipgloss"

// Icons shared by the listing and preview output.
const (
	IconActive      = "●"
	IconRecommended = "★"
)

// StyleSet is the set of lipgloss styles derived from a ColorScheme.
type StyleSet struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Label   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Footer  lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	Digits     lipgloss.Style
	Subtitle   lipgloss.Style
	Panel      lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Button     lipgloss.Style
	Help       lipgloss.Style
	TableRow   lipgloss.Style
	TableHead  lipgloss.Style
	TableEdge  lipgloss.Style
	ToastStyle lipgloss.Style
}

// GetStyles builds the StyleSet for a scheme.
func GetStyles(scheme *ColorScheme) *StyleSet {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	return &StyleSet{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(c(scheme.Primary)),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(c(scheme.Secondary)),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(c(scheme.TextSecondary)),
		Body:    lipgloss.NewStyle().Foreground(c(scheme.TextPrimary)),
		Muted:   lipgloss.NewStyle().Foreground(c(scheme.TextMuted)),
		Footer:  lipgloss.NewStyle().Foreground(c(scheme.TextMuted)).Italic(true),

		Success: lipgloss.NewStyle().Foreground(c(scheme.Success)),
		Warning: lipgloss.NewStyle().Foreground(c(scheme.Warning)),
		Error:   lipgloss.NewStyle().Foreground(c(scheme.Error)),
		Info:    lipgloss.NewStyle().Foreground(c(scheme.Primary)),

		Digits:   lipgloss.NewStyle().Bold(true).Foreground(c(scheme.Digits)),
		Subtitle: lipgloss.NewStyle().Foreground(c(scheme.TextSecondary)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(scheme.Border)).
			Padding(1, 2),
		Tab: lipgloss.NewStyle().
			Foreground(c(scheme.TextMuted)).
			Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(scheme.TextInverse)).
			Background(c(scheme.Primary)).
			Padding(0, 2),
		Button: lipgloss.NewStyle().
			Foreground(c(scheme.TextPrimary)).
			Background(c(scheme.Surface)).
			Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(c(scheme.TextMuted)),
		TableRow:  lipgloss.NewStyle().Foreground(c(scheme.TextPrimary)).PaddingRight(2),
		TableHead: lipgloss.NewStyle().Bold(true).Foreground(c(scheme.Success)).PaddingRight(2),
		TableEdge: lipgloss.NewStyle().Foreground(c(scheme.Border)),
		ToastStyle: lipgloss.NewStyle().
			Foreground(c(scheme.TextInverse)).
			Background(c(scheme.Highlight)).
			Padding(0, 1),
	}
}
