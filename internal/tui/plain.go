package tui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/schema"
	"github.com/cloudposse/ticktock/pkg/ui"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/widget"
	"github.com/cloudposse/ticktock/pkg/widget/countdown"
	"github.com/cloudposse/ticktock/pkg/widget/stopwatch"
	"github.com/cloudposse/ticktock/pkg/widget/wallclock"
)

// PlainInterval is how often the stopwatch reports in plain mode.
const PlainInterval = time.Second

// lineWriter serializes progress lines coming from scheduler goroutines.
type lineWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *lineWriter) println(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintln(w.out, s); err != nil {
		log.Debug("Dropping progress line", "error", err)
	}
}

// RenderClock draws a single clock reading: the dial when analog is set,
// then the digital time and the date.
func RenderClock(snap wallclock.Snapshot, analog bool, scheme *theme.ColorScheme) string {
	lines := []string{}
	if analog {
		lines = append(lines, renderDial(wallclock.Angles{
			Hour:   snap.HourAngle,
			Minute: snap.MinuteAngle,
			Second: snap.SecondAngle,
		}, dialRadius, scheme), "")
	}
	lines = append(lines, digitalTime(snap), snap.DateLabel)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// RunTimerPlain counts the configured duration down, writing the remaining
// time on every tick. It returns once the countdown completes or ctx is
// cancelled; a cancelled countdown is paused and its remaining time written.
func RunTimerPlain(ctx context.Context, cfg *schema.Configuration, sched scheduler.Scheduler, out io.Writer, tones widget.TonePlayer) error {
	w := &lineWriter{out: out}
	done := make(chan struct{})
	var once sync.Once

	publisher := widget.PublisherFunc[countdown.Snapshot](func(s countdown.Snapshot) {
		if s.State == widget.Idle {
			return
		}
		w.println(s.Fields.Clock())
		if s.State == widget.Completed {
			once.Do(func() { close(done) })
		}
	})

	opts := []countdown.Option{
		countdown.WithPublisher(publisher),
		countdown.WithNotifier(ui.ToastNotifier{Icon: ui.IconClock}),
		countdown.WithTickPeriod(time.Duration(cfg.Timer.TickMs) * time.Millisecond),
		countdown.WithConfig(countdown.Config{
			Hours:   cfg.Timer.Hours,
			Minutes: cfg.Timer.Minutes,
			Seconds: cfg.Timer.Seconds,
		}),
	}
	if cfg.Timer.Sound && tones != nil {
		opts = append(opts, countdown.WithTonePlayer(tones))
	}

	timer := countdown.New(sched, opts...)
	if err := timer.Start(); err != nil {
		return err
	}
	log.Debug("Plain countdown started", "run_id", timer.RunID(), "duration", timer.Initial())

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		timer.Pause()
		w.println(fmt.Sprintf("Paused with %s remaining", timer.Snapshot().Fields.Clock()))
		return nil
	}
}

// RunStopwatchPlain runs a stopwatch until ctx is cancelled, writing the
// elapsed time every PlainInterval and the final reading on exit.
func RunStopwatchPlain(ctx context.Context, cfg *schema.Configuration, sched scheduler.Scheduler, out io.Writer) error {
	order, err := stopwatch.ParseLapOrder(cfg.Stopwatch.LapOrder)
	if err != nil {
		return err
	}

	w := &lineWriter{out: out}
	sw := stopwatch.New(sched,
		stopwatch.WithLapOrder(order),
		stopwatch.WithTickPeriod(time.Duration(cfg.Stopwatch.TickMs)*time.Millisecond),
	)

	report := sched.Register(func() {
		w.println(sw.Snapshot().Fields.String())
	}, PlainInterval)
	defer sched.Cancel(report)

	sw.Start()
	<-ctx.Done()
	sw.Pause()

	w.println("Total " + sw.Snapshot().Fields.String())
	return nil
}
