package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/widget/countdown"
)

type glassRunes struct {
	sand, air         rune
	left, right       string
	topRim, bottomRim string
	neck, stream      string
}

var glassStyles = map[countdown.SandStyle]glassRunes{
	countdown.SandClassic: {
		sand: '█', air: ' ',
		left: "\\", right: "/",
		topRim: "═", bottomRim: "═",
		neck: "╳", stream: "┆",
	},
	countdown.SandMinimal: {
		sand: '•', air: '·',
		left: " ", right: " ",
		topRim: " ", bottomRim: " ",
		neck: "·", stream: ":",
	},
	countdown.SandFuturistic: {
		sand: '▓', air: '░',
		left: "⟍", right: "⟋",
		topRim: "▔", bottomRim: "▁",
		neck: "◆", stream: "│",
	},
}

// hourglassLines draws an hourglass with bulbRows rows per bulb. Sand
// settles at the neck in the top bulb and at the base in the bottom bulb;
// the stream shows while sand is falling.
func hourglassLines(levels countdown.SandLevels, style countdown.SandStyle, bulbRows int, falling bool) []string {
	g, ok := glassStyles[style]
	if !ok {
		g = glassStyles[countdown.SandClassic]
	}
	inner := 2*bulbRows - 1
	total := inner + 2

	topFill := filledRows(levels.Top, bulbRows)
	bottomFill := filledRows(levels.Bottom, bulbRows)

	lines := make([]string, 0, 2*bulbRows+3)
	lines = append(lines, strings.Repeat(g.topRim, total))

	for i := 0; i < bulbRows; i++ {
		width := inner - 2*i
		fill := g.air
		if i >= bulbRows-topFill {
			fill = g.sand
		}
		lines = append(lines, bulbRow(i+1, width, fill, g.left, g.right))
	}

	neck := g.neck
	if falling {
		neck = g.stream
	}
	lines = append(lines, strings.Repeat(" ", total/2)+neck+strings.Repeat(" ", total/2))

	for i := bulbRows - 1; i >= 0; i-- {
		width := inner - 2*i
		fill := g.air
		if i < bottomFill {
			fill = g.sand
		}
		if falling && i == bulbRows-1 && fill == g.air {
			lines = append(lines, bulbStream(i+1, width, g.air, g.stream, g.right, g.left))
			continue
		}
		lines = append(lines, bulbRow(i+1, width, fill, g.right, g.left))
	}

	lines = append(lines, strings.Repeat(g.bottomRim, total))
	return lines
}

func bulbRow(indent, width int, fill rune, left, right string) string {
	return strings.Repeat(" ", indent-1) + left + strings.Repeat(string(fill), width) + right
}

func bulbStream(indent, width int, air rune, stream, left, right string) string {
	half := width / 2
	return strings.Repeat(" ", indent-1) + left +
		strings.Repeat(string(air), half) + stream + strings.Repeat(string(air), width-half-1) + right
}

func filledRows(level float64, rows int) int {
	n := int(math.Round(level / 100 * float64(rows)))
	return min(max(n, 0), rows)
}

// renderHourglass colors the sand with the scheme's sand colors.
func renderHourglass(levels countdown.SandLevels, style countdown.SandStyle, bulbRows int, falling bool, scheme *theme.ColorScheme) string {
	g, ok := glassStyles[style]
	if !ok {
		g = glassStyles[countdown.SandClassic]
	}
	frame := lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Dial))
	top := lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.SandTop))
	bottom := lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.SandBottom))
	sand := string(g.sand)

	lines := hourglassLines(levels, style, bulbRows, falling)
	for i, line := range lines {
		sandStyle := top
		if i > bulbRows+1 {
			sandStyle = bottom
		}
		var b strings.Builder
		for _, r := range line {
			s := string(r)
			switch {
			case s == sand:
				b.WriteString(sandStyle.Render(s))
			case r == ' ':
				b.WriteRune(r)
			default:
				b.WriteString(frame.Render(s))
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
