package theme

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
)

// WCAG sRGB gamma correction constants.
const (
	rgbMaxValue          = 255.0
	srgbThreshold        = 0.03928
	srgbGammaDivisor     = 12.92
	srgbGammaOffset      = 0.055
	srgbGammaDenominator = 1.055
	srgbGammaExponent    = 2.4

	wcagLuminanceRedWeight   = 0.2126
	wcagLuminanceGreenWeight = 0.7152
	wcagLuminanceBlueWeight  = 0.0722
	luminanceThreshold       = 0.5

	hexColorLength = 6
	hexBase        = 16
	intBitSize     = 64

	contrastDark  = "#000000"
	contrastLight = "#FFFFFF"
)

// GetContrastColor returns black or white text for the given background,
// using the WCAG relative luminance formula.
func GetContrastColor(bgColor string) string {
	hexColor := bgColor
	if len(hexColor) > 0 && hexColor[0] == '#' {
		hexColor = hexColor[1:]
	}
	if len(hexColor) != hexColorLength {
		return contrastLight
	}

	r, err1 := strconv.ParseInt(hexColor[0:2], hexBase, intBitSize)
	g, err2 := strconv.ParseInt(hexColor[2:4], hexBase, intBitSize)
	b, err3 := strconv.ParseInt(hexColor[4:6], hexBase, intBitSize)
	if err1 != nil || err2 != nil || err3 != nil {
		return contrastLight
	}

	toLinear := func(c int64) float64 {
		v := float64(c) / rgbMaxValue
		if v <= srgbThreshold {
			return v / srgbGammaDivisor
		}
		return math.Pow((v+srgbGammaOffset)/srgbGammaDenominator, srgbGammaExponent)
	}

	luminance := wcagLuminanceRedWeight*toLinear(r) +
		wcagLuminanceGreenWeight*toLinear(g) +
		wcagLuminanceBlueWeight*toLinear(b)

	if luminance > luminanceThreshold {
		return contrastDark
	}
	return contrastLight
}

// levelBadge pairs a level with its 4-character label and badge color.
type levelBadge struct {
	level log.Level
	label string
	color func(*ColorScheme) string
}

var levelBadges = []levelBadge{
	{log.DebugLevel, "DEBU", func(s *ColorScheme) string { return s.LogDebug }},
	{log.InfoLevel, "INFO", func(s *ColorScheme) string { return s.LogInfo }},
	{log.WarnLevel, "WARN", func(s *ColorScheme) string { return s.LogWarning }},
	{log.ErrorLevel, "ERRO", func(s *ColorScheme) string { return s.LogError }},
	{log.FatalLevel, "FATA", func(s *ColorScheme) string { return s.LogError }},
}

// GetLogStyles returns charm/log styles configured with the theme colors.
func GetLogStyles(scheme *ColorScheme) *log.Styles {
	if scheme == nil {
		return log.DefaultStyles()
	}

	styles := log.DefaultStyles()
	for _, badge := range levelBadges {
		bg := badge.color(scheme)
		styles.Levels[badge.level] = lipgloss.NewStyle().
			SetString(badge.label).
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(GetContrastColor(bg))).
			Bold(true).
			Padding(0, 1)
	}

	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextMuted))
	styles.Value = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Primary))
	styles.Timestamp = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextMuted)).Faint(true)
	styles.Message = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextPrimary))
	styles.Prefix = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextMuted)).Bold(true)
	styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextMuted)).Faint(true)

	return styles
}

// GetLogStylesNoColor returns charm/log styles with no colors for --no-color mode.
func GetLogStylesNoColor() *log.Styles {
	styles := &log.Styles{
		Levels: make(map[log.Level]lipgloss.Style, len(levelBadges)),
		Keys:   make(map[string]lipgloss.Style),
		Values: make(map[string]lipgloss.Style),
	}
	for _, badge := range levelBadges {
		styles.Levels[badge.level] = lipgloss.NewStyle().SetString(badge.label)
	}
	styles.Timestamp = lipgloss.NewStyle()
	styles.Message = lipgloss.NewStyle()
	styles.Key = lipgloss.NewStyle()
	styles.Value = lipgloss.NewStyle()
	styles.Prefix = lipgloss.NewStyle()
	styles.Separator = lipgloss.NewStyle()
	return styles
}
