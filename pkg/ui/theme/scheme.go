package theme

// ColorScheme defines semantic color mappings for UI elements.
// These are derived from a Theme's ANSI colors.
type ColorScheme struct {
	// Core semantic colors
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string

	// Text colors
	TextPrimary   string
	TextSecondary string
	TextMuted     string
	TextInverse   string

	// UI elements
	Border     string
	Background string
	Surface    string

	// Semantic elements
	Link      string
	Selected  string
	Highlight string

	// Clock faces
	Digits     string // Large digital readout
	Dial       string // Analog dial ticks and rim
	HourHand   string
	MinuteHand string
	SecondHand string
	SandTop    string // Hourglass top bulb
	SandBottom string // Hourglass bottom bulb
	Progress   string // Progress bar fill

	// Log levels
	LogDebug   string
	LogInfo    string
	LogWarning string
	LogError   string
}

// GenerateColorScheme creates a semantic color scheme from a Theme.
func GenerateColorScheme(t *Theme) ColorScheme {
	textPrimary := t.White
	digits := t.BrightWhite
	if !t.Meta.IsDark {
		// Light themes invert the text colors.
		textPrimary = t.Black
		digits = t.Foreground
	}

	return ColorScheme{
		Primary:   t.Blue,
		Secondary: t.Magenta,
		Success:   t.Green,
		Warning:   t.Yellow,
		Error:     t.Red,

		TextPrimary:   textPrimary,
		TextSecondary: t.BrightBlack,
		TextMuted:     t.BrightBlack,
		TextInverse:   t.Background,

		Border:     t.Blue,
		Background: t.Background,
		Surface:    t.Selection,

		Link:      t.BrightBlue,
		Selected:  t.BrightGreen,
		Highlight: t.BrightMagenta,

		Digits:     digits,
		Dial:       t.BrightBlack,
		HourHand:   t.Foreground,
		MinuteHand: t.Cyan,
		SecondHand: t.Red,
		SandTop:    t.Yellow,
		SandBottom: t.BrightYellow,
		Progress:   t.Green,

		LogDebug:   t.Cyan,
		LogInfo:    t.Blue,
		LogWarning: t.Yellow,
		LogError:   t.Red,
	}
}

// GetColorSchemeForTheme loads a theme by name and generates its color scheme.
func GetColorSchemeForTheme(themeName string) (*ColorScheme, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}

	scheme := GenerateColorScheme(registry.GetOrDefault(themeName))
	return &scheme, nil
}
