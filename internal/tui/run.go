package tui

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/internal/audio"
	"github.com/cloudposse/ticktock/pkg/clock"
	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/schema"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/widget"
	"github.com/cloudposse/ticktock/pkg/widget/countdown"
	"github.com/cloudposse/ticktock/pkg/widget/stopwatch"
	"github.com/cloudposse/ticktock/pkg/widget/wallclock"
)

// RunOptions adjusts a TUI session.
type RunOptions struct {
	InitialTab Tab
	// Preference persists theme toggles. Nil keeps them in memory.
	Preference *theme.Preference
	// Bell is where tones are rung. Defaults to stderr.
	Bell io.Writer
	// StartTimer starts the countdown before the first frame is drawn.
	StartTimer bool
}

// Widgets are the three widgets of a session.
type Widgets struct {
	Clock     *wallclock.Clock
	Stopwatch *stopwatch.Stopwatch
	Timer     *countdown.Timer
}

// NewWidgets builds the widgets described by cfg. Snapshots and
// notifications go to events; tones go to tones when the relevant sound
// setting is on.
func NewWidgets(cfg *schema.Configuration, sched scheduler.Scheduler, events *Events, tones widget.TonePlayer) (*Widgets, error) {
	lapOrder, err := stopwatch.ParseLapOrder(cfg.Stopwatch.LapOrder)
	if err != nil {
		return nil, err
	}
	resetPolicy, err := countdown.ParseResetPolicy(cfg.Timer.ResetPolicy)
	if err != nil {
		return nil, err
	}

	clockOpts := []wallclock.Option{
		wallclock.WithPublisher(Publisher[wallclock.Snapshot](events)),
		wallclock.With24Hour(cfg.Clock.Format24h),
	}
	if cfg.Clock.Sound {
		clockOpts = append(clockOpts, wallclock.WithSound(tones))
	}

	timerOpts := []countdown.Option{
		countdown.WithPublisher(Publisher[countdown.Snapshot](events)),
		countdown.WithNotifier(events),
		countdown.WithResetPolicy(resetPolicy),
		countdown.WithTickPeriod(time.Duration(cfg.Timer.TickMs) * time.Millisecond),
		countdown.WithConfig(countdown.Config{
			Hours:   cfg.Timer.Hours,
			Minutes: cfg.Timer.Minutes,
			Seconds: cfg.Timer.Seconds,
		}),
	}
	if cfg.Timer.Sound {
		timerOpts = append(timerOpts, countdown.WithTonePlayer(tones))
	}

	return &Widgets{
		Clock: wallclock.New(clock.RealClock{}, sched, clockOpts...),
		Stopwatch: stopwatch.New(sched,
			stopwatch.WithPublisher(Publisher[stopwatch.Snapshot](events)),
			stopwatch.WithNotifier(events),
			stopwatch.WithLapOrder(lapOrder),
			stopwatch.WithTickPeriod(time.Duration(cfg.Stopwatch.TickMs)*time.Millisecond),
		),
		Timer: countdown.New(sched, timerOpts...),
	}, nil
}

// ResolveMode picks the display mode: configuration first, then the saved
// preference, then the default.
func ResolveMode(cfg *schema.Configuration, pref *theme.Preference) theme.Mode {
	if cfg.Settings.Terminal.Mode != "" {
		if mode, err := theme.ParseMode(cfg.Settings.Terminal.Mode); err == nil {
			return mode
		}
	}
	if pref != nil {
		return pref.Mode()
	}
	return theme.DefaultMode
}

// Run starts the interactive program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, cfg *schema.Configuration, opts RunOptions) error {
	registry, err := theme.NewRegistry()
	if err != nil {
		return err
	}
	sandStyle, err := countdown.ParseSandStyle(cfg.Timer.SandStyle)
	if err != nil {
		return err
	}

	bellOut := opts.Bell
	if bellOut == nil {
		bellOut = os.Stderr
	}
	bell := audio.Player(cfg.Clock.Sound || cfg.Timer.Sound, bellOut)
	defer bell.Close()

	sched := scheduler.NewTickerScheduler()
	defer sched.Close()
	events := NewEvents()
	defer events.Close()

	widgets, err := NewWidgets(cfg, sched, events, bell)
	if err != nil {
		return err
	}
	if opts.StartTimer {
		if err := widgets.Timer.Start(); err != nil {
			return err
		}
	}

	model := New(Options{
		Clock:      widgets.Clock,
		Stopwatch:  widgets.Stopwatch,
		Timer:      widgets.Timer,
		Events:     events,
		Themes:     registry,
		Preference: opts.Preference,
		Mode:       ResolveMode(cfg, opts.Preference),
		Theme:      cfg.Settings.Terminal.Theme,
		Analog:     cfg.Clock.Analog,
		SandStyle:  sandStyle,
		InitialTab: opts.InitialTab,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Settings.Terminal.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	log.Debug("Starting TUI", "tab", opts.InitialTab, "mode", model.mode)
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.Mark(errors.Wrap(err, "running terminal UI"), errUtils.ErrTUI)
	}
	return nil
}
