package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/cloudposse/ticktock/pkg/elapsed"
	"github.com/cloudposse/ticktock/pkg/widget"
	"github.com/cloudposse/ticktock/pkg/widget/countdown"
	"github.com/cloudposse/ticktock/pkg/widget/stopwatch"
	"github.com/cloudposse/ticktock/pkg/widget/wallclock"
)

func formatDuration(d time.Duration) string {
	return elapsed.FromDuration(d).String()
}

// digitalTime renders "03:30:07 PM" or "15:30:07".
func digitalTime(s wallclock.Snapshot) string {
	t := s.HourLabel + ":" + s.MinuteLabel + ":" + s.SecondLabel
	if s.PeriodLabel != "" {
		t += " " + s.PeriodLabel
	}
	return t
}

func (m *Model) clockView() string {
	snap := m.opts.Clock.Snapshot()
	lines := []string{}
	if m.analog {
		lines = append(lines, renderDial(wallclock.Angles{
			Hour:   snap.HourAngle,
			Minute: snap.MinuteAngle,
			Second: snap.SecondAngle,
		}, dialRadius, m.scheme), "")
	}
	lines = append(lines,
		m.styles.Digits.Render(spaced(digitalTime(snap))),
		m.styles.Subtitle.Render(snap.DateLabel),
	)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) stopwatchView() string {
	snap := m.opts.Stopwatch.Snapshot()
	status := m.statusLine(snap.State)

	lines := []string{
		m.styles.Digits.Render(spaced(snap.Fields.String())),
		status,
	}
	if len(snap.Laps) > 0 {
		lines = append(lines, "", m.lapTable(snap.Laps))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) lapTable(laps []stopwatch.Lap) string {
	shown := laps
	if len(shown) > maxLapsShown {
		shown = shown[:maxLapsShown]
	}
	rows := lo.Map(shown, func(lap stopwatch.Lap, _ int) []string {
		return []string{fmt.Sprintf("%d", lap.Number), formatDuration(lap.Split), formatDuration(lap.Elapsed)}
	})

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("Lap", "Split", "Total").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.TableHead
			}
			return m.styles.TableRow
		})

	out := t.String()
	if hidden := len(laps) - len(shown); hidden > 0 {
		out += "\n" + m.styles.Muted.Render(fmt.Sprintf("… %d more", hidden))
	}
	return out
}

func (m *Model) timerView() string {
	snap := m.opts.Timer.Snapshot()

	if snap.State == widget.Idle {
		return lipgloss.JoinVertical(lipgloss.Center,
			m.configEditor(snap.Config),
			m.styles.Muted.Render("↑/↓ adjust  ←/→ select  space start"),
		)
	}

	falling := snap.State == widget.Running
	glass := renderHourglass(snap.Sand, m.opts.SandStyle, bulbRows, falling, m.scheme)
	readout := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Digits.Render(spaced(snap.Fields.Clock())),
		m.statusLine(snap.State),
		"",
		m.progress.ViewAs(snap.Progress/100),
		m.styles.Muted.Render(fmt.Sprintf("%.0f%% of %s", snap.Progress, elapsed.FromDuration(snap.Initial).Clock())),
	)
	return lipgloss.JoinHorizontal(lipgloss.Center, glass, "    ", readout)
}

func (m *Model) configEditor(c countdown.Config) string {
	fields := []struct {
		field countdown.Field
		value int
		label string
	}{
		{countdown.FieldHours, c.Hours, "hours"},
		{countdown.FieldMinutes, c.Minutes, "minutes"},
		{countdown.FieldSeconds, c.Seconds, "seconds"},
	}

	cols := make([]string, 0, 2*len(fields))
	for i, f := range fields {
		if i > 0 {
			cols = append(cols, m.styles.Digits.Render(" : "))
		}
		digits := m.styles.Digits.Render(fmt.Sprintf("%02d", f.value))
		label := m.styles.Muted.Render(f.label)
		if f.field == m.timerField {
			digits = m.styles.ActiveTab.Render(fmt.Sprintf("%02d", f.value))
			label = m.styles.Label.Render(f.label)
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center, digits, label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) statusLine(s widget.RunState) string {
	switch s {
	case widget.Running:
		return m.spinner.View() + " " + m.styles.Success.Render("running")
	case widget.Paused:
		return m.styles.Warning.Render("paused")
	case widget.Completed:
		return m.styles.Info.Render("complete")
	default:
		return m.styles.Muted.Render("ready")
	}
}

// spaced widens a readout for legibility: "12:05" → "1 2 : 0 5".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
