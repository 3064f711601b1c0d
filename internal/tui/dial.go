package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/widget/wallclock"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellDial
	cellSecond
	cellMinute
	cellHour
	cellCenter
)

type cell struct {
	r    rune
	kind cellKind
}

const (
	// Terminal cells are about twice as tall as wide.
	aspect = 2.0

	hourHandRatio   = 0.5
	minuteHandRatio = 0.8
	secondHandRatio = 0.9
)

var handRunes = map[cellKind]rune{
	cellSecond: '·',
	cellMinute: '•',
	cellHour:   '●',
}

// dialGrid lays out an analog face of the given radius in rows. Hands are
// drawn second, minute, hour so the shorter hands stay visible on overlap.
func dialGrid(a wallclock.Angles, radius int) [][]cell {
	height := 2*radius + 1
	width := int(2*float64(radius)*aspect) + 1
	cx, cy := width/2, radius

	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	set := func(x, y int, r rune, kind cellKind) {
		if y >= 0 && y < height && x >= 0 && x < width {
			grid[y][x] = cell{r: r, kind: kind}
		}
	}
	point := func(deg, length float64) (int, int) {
		rad := deg * math.Pi / 180
		x := cx + int(math.Round(math.Sin(rad)*length*aspect))
		y := cy - int(math.Round(math.Cos(rad)*length))
		return x, y
	}

	for h := 1; h <= 12; h++ {
		x, y := point(float64(h)*30, float64(radius))
		label := strconv.Itoa(h)
		if h%3 != 0 {
			label = "·"
		}
		for i, r := range label {
			set(x+i-len([]rune(label))/2, y, r, cellDial)
		}
	}

	drawHand := func(deg, ratio float64, kind cellKind) {
		length := float64(radius) * ratio
		steps := int(math.Ceil(length * aspect))
		for i := 1; i <= steps; i++ {
			x, y := point(deg, length*float64(i)/float64(steps))
			set(x, y, handRunes[kind], kind)
		}
	}
	drawHand(a.Second, secondHandRatio, cellSecond)
	drawHand(a.Minute, minuteHandRatio, cellMinute)
	drawHand(a.Hour, hourHandRatio, cellHour)
	set(cx, cy, '◉', cellCenter)

	return grid
}

// renderDial draws the face with the scheme's hand colors.
func renderDial(a wallclock.Angles, radius int, scheme *theme.ColorScheme) string {
	styles := map[cellKind]lipgloss.Style{
		cellDial:   lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Dial)),
		cellSecond: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.SecondHand)),
		cellMinute: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.MinuteHand)),
		cellHour:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.HourHand)),
		cellCenter: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Primary)),
	}

	var b strings.Builder
	for y, row := range dialGrid(a, radius) {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.kind == cellEmpty {
				b.WriteRune(c.r)
				continue
			}
			b.WriteString(styles[c.kind].Render(string(c.r)))
		}
	}
	return b.String()
}
