// Package tui is the interactive terminal front end: a tabbed bubbletea
// program drawing the clock, stopwatch and countdown widgets.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	mouseZone "github.com/lrstanley/bubblezone"

	errUtils "github.com/cloudposse/ticktock/errors"
	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/widget"
	"github.com/cloudposse/ticktock/pkg/widget/countdown"
	"github.com/cloudposse/ticktock/pkg/widget/stopwatch"
	"github.com/cloudposse/ticktock/pkg/widget/wallclock"
)

// Tab identifies a widget page.
type Tab int

const (
	ClockTab Tab = iota
	StopwatchTab
	TimerTab
)

var tabNames = []string{"Clock", "Stopwatch", "Timer"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "Unknown"
	}
	return tabNames[t]
}

const (
	toastDuration  = 3 * time.Second
	dialRadius     = 7
	bulbRows       = 5
	maxProgressBar = 60
	maxLapsShown   = 8
)

type toastExpiredMsg struct{ id int }

// Options wires the model to its widgets and preferences.
type Options struct {
	Clock     *wallclock.Clock
	Stopwatch *stopwatch.Stopwatch
	Timer     *countdown.Timer
	Events    *Events

	Themes *theme.Registry
	// Preference persists the light/dark toggle. Nil keeps toggles in memory.
	Preference *theme.Preference
	Mode       theme.Mode
	// Theme pins a named palette until the user toggles the mode.
	Theme string

	Analog     bool
	SandStyle  countdown.SandStyle
	InitialTab Tab

	// CopyText defaults to the system clipboard.
	CopyText func(string) error
}

// Model is the root bubbletea model.
type Model struct {
	opts Options

	tab        Tab
	width      int
	height     int
	analog     bool
	timerField countdown.Field

	mode   theme.Mode
	pinned string
	scheme *theme.ColorScheme
	styles *theme.StyleSet

	help     help.Model
	progress progress.Model
	spinner  spinner.Model

	toast   string
	toastID int

	zones      *mouseZone.Manager
	zonePrefix string
	quitting   bool
}

// New builds the root model.
func New(opts Options) *Model {
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}
	if opts.Mode == "" {
		opts.Mode = theme.DefaultMode
	}
	if opts.SandStyle == "" {
		opts.SandStyle = countdown.SandClassic
	}

	m := &Model{
		opts:       opts,
		tab:        opts.InitialTab,
		analog:     opts.Analog,
		timerField: countdown.FieldMinutes,
		pinned:     opts.Theme,
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		zones:      mouseZone.New(),
	}
	m.zonePrefix = m.zones.NewPrefix()
	m.applyMode(opts.Mode)
	return m
}

func (m *Model) applyMode(mode theme.Mode) {
	m.mode = mode
	scheme := theme.GenerateColorScheme(m.opts.Themes.ForMode(m.pinned, mode))
	m.scheme = &scheme
	m.styles = theme.GetStyles(&scheme)
	m.progress = progress.New(progress.WithSolidFill(scheme.Progress), progress.WithoutPercentage())
	m.progress.Width = m.progressWidth()
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Primary))
	m.help.Styles.ShortKey = m.styles.Label
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.FullKey = m.styles.Label
	m.help.Styles.FullDesc = m.styles.Help
}

func (m *Model) progressWidth() int {
	if m.width <= 0 {
		return maxProgressBar / 2
	}
	return min(m.width-10, maxProgressBar)
}

func (m *Model) Init() tea.Cmd {
	m.opts.Clock.Activate()
	return tea.Batch(
		m.opts.Events.waitForRefresh(),
		m.opts.Events.waitForToast(),
		m.spinner.Tick,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = message.Width, message.Height
		m.help.Width = message.Width
		m.progress.Width = m.progressWidth()
		return m, nil

	case refreshMsg:
		return m, m.opts.Events.waitForRefresh()

	case toastMsg:
		return m, tea.Batch(m.showToast(string(message)), m.opts.Events.waitForToast())

	case toastExpiredMsg:
		if message.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(message)

	case tea.KeyMsg:
		return m, m.handleKey(message)
	}
	return m, nil
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastID++
	m.toast = text
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	for i := range tabNames {
		if m.zones.Get(m.zoneID("tab", i)).InBounds(msg) {
			m.tab = Tab(i)
			return nil
		}
	}
	for _, b := range m.buttons() {
		if m.zones.Get(m.zoneID(b.label, 0)).InBounds(msg) {
			return b.press()
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.shutdown()
		return tea.Quit
	case key.Matches(msg, keys.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		return nil
	case key.Matches(msg, keys.PrevTab):
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return nil
	case key.Matches(msg, keys.Clock):
		m.tab = ClockTab
		return nil
	case key.Matches(msg, keys.Stopwatch):
		m.tab = StopwatchTab
		return nil
	case key.Matches(msg, keys.Timer):
		m.tab = TimerTab
		return nil
	case key.Matches(msg, keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	switch m.tab {
	case ClockTab:
		return m.handleClockKey(msg)
	case StopwatchTab:
		return m.handleStopwatchKey(msg)
	case TimerTab:
		return m.handleTimerKey(msg)
	}
	return nil
}

func (m *Model) handleClockKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Format):
		m.opts.Clock.Toggle24Hour()
	case key.Matches(msg, keys.Analog):
		m.analog = !m.analog
	}
	return nil
}

func (m *Model) handleStopwatchKey(msg tea.KeyMsg) tea.Cmd {
	sw := m.opts.Stopwatch
	switch {
	case key.Matches(msg, keys.Toggle):
		sw.Toggle()
	case key.Matches(msg, keys.Reset):
		sw.Reset()
	case key.Matches(msg, keys.Lap):
		sw.Lap()
	case key.Matches(msg, keys.Copy):
		return m.copyLaps()
	}
	return nil
}

func (m *Model) handleTimerKey(msg tea.KeyMsg) tea.Cmd {
	tm := m.opts.Timer
	switch {
	case key.Matches(msg, keys.Toggle):
		if err := tm.Toggle(); err != nil {
			log.Debug("Timer start rejected", "error", err)
		}
	case key.Matches(msg, keys.Reset):
		tm.Reset()
	case key.Matches(msg, keys.Up):
		tm.Adjust(m.timerField, 1)
	case key.Matches(msg, keys.Down):
		tm.Adjust(m.timerField, -1)
	case key.Matches(msg, keys.Left):
		m.timerField = (m.timerField + 2) % 3
	case key.Matches(msg, keys.Right):
		m.timerField = (m.timerField + 1) % 3
	}
	return nil
}

func (m *Model) toggleTheme() tea.Cmd {
	// The displayed mode may come from settings rather than the stored preference.
	next := m.mode.Toggle()
	if m.opts.Preference != nil {
		if err := m.opts.Preference.Set(next); err != nil {
			log.Warn("Failed to save theme preference", "error", err)
			return m.showToast("Could not save theme preference")
		}
	}
	m.pinned = ""
	m.applyMode(next)
	return nil
}

func (m *Model) copyLaps() tea.Cmd {
	laps := m.opts.Stopwatch.Laps()
	if len(laps) == 0 {
		return m.showToast("No laps to copy")
	}
	if err := m.opts.CopyText(lapsText(laps)); err != nil {
		err = errUtils.Build(errUtils.ErrClipboard).
			WithExplanation(err.Error()).
			WithContext("laps", len(laps)).
			Err()
		log.Debug("Clipboard write failed", "error", err)
		return m.showToast("Clipboard unavailable")
	}
	return m.showToast(fmt.Sprintf("Copied %d laps", len(laps)))
}

func (m *Model) shutdown() {
	m.opts.Clock.Deactivate()
	if m.opts.Stopwatch.State() == widget.Running {
		m.opts.Stopwatch.Pause()
	}
	if m.opts.Timer.State() == widget.Running {
		m.opts.Timer.Pause()
	}
	m.opts.Events.Close()
	m.zones.Close()
}

type button struct {
	label string
	press func() tea.Cmd
}

// buttons are the clickable controls of the current tab.
func (m *Model) buttons() []button {
	switch m.tab {
	case StopwatchTab:
		return []button{
			{label: toggleLabel(m.opts.Stopwatch.State()), press: func() tea.Cmd { m.opts.Stopwatch.Toggle(); return nil }},
			{label: "Lap", press: func() tea.Cmd { m.opts.Stopwatch.Lap(); return nil }},
			{label: "Reset", press: func() tea.Cmd { m.opts.Stopwatch.Reset(); return nil }},
		}
	case TimerTab:
		return []button{
			{label: toggleLabel(m.opts.Timer.State()), press: func() tea.Cmd { _ = m.opts.Timer.Toggle(); return nil }},
			{label: "Reset", press: func() tea.Cmd { m.opts.Timer.Reset(); return nil }},
		}
	default:
		return []button{
			{label: "12/24h", press: func() tea.Cmd { m.opts.Clock.Toggle24Hour(); return nil }},
			{label: "Analog", press: func() tea.Cmd { m.analog = !m.analog; return nil }},
		}
	}
}

func toggleLabel(s widget.RunState) string {
	switch s {
	case widget.Running:
		return "Pause"
	case widget.Paused:
		return "Resume"
	default:
		return "Start"
	}
}

func (m *Model) zoneID(name string, i int) string {
	return fmt.Sprintf("%s%s-%d", m.zonePrefix, name, i)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.tab {
	case StopwatchTab:
		body = m.stopwatchView()
	case TimerTab:
		body = m.timerView()
	default:
		body = m.clockView()
	}

	sections := []string{
		m.tabBar(),
		m.styles.Panel.Render(body),
		m.buttonBar(),
		m.toastLine(),
		m.help.View(keys),
	}
	view := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
	}
	return m.zones.Scan(view)
}

func (m *Model) tabBar() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		style := m.styles.Tab
		if Tab(i) == m.tab {
			style = m.styles.ActiveTab
		}
		tabs[i] = m.zones.Mark(m.zoneID("tab", i), style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) buttonBar() string {
	bs := m.buttons()
	rendered := make([]string, 0, 2*len(bs))
	for i, b := range bs {
		if i > 0 {
			rendered = append(rendered, " ")
		}
		rendered = append(rendered, m.zones.Mark(m.zoneID(b.label, 0), m.styles.Button.Render(b.label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) toastLine() string {
	if m.toast == "" {
		return ""
	}
	text := m.toast
	if m.width > 4 {
		text = ansi.Truncate(text, m.width-4, "…")
	}
	return m.styles.ToastStyle.Render(text)
}

// lapsText is the clipboard form of a lap list.
func lapsText(laps []stopwatch.Lap) string {
	var b strings.Builder
	for _, lap := range laps {
		fmt.Fprintf(&b, "Lap %d\t%s\t%s\n", lap.Number, formatDuration(lap.Split), formatDuration(lap.Elapsed))
	}
	return b.String()
}
