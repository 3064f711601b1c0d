package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/clock"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/schema"
	"github.com/cloudposse/ticktock/pkg/ui"
	"github.com/cloudposse/ticktock/pkg/ui/theme"
	"github.com/cloudposse/ticktock/pkg/widget/wallclock"
)

func plainConfig() *schema.Configuration {
	return &schema.Configuration{
		Stopwatch: schema.StopwatchConfig{TickMs: 10, LapOrder: "newest-first"},
		Timer:     schema.TimerConfig{TickMs: 1000, Seconds: 3},
	}
}

func waitForRegistrations(t *testing.T, sched *scheduler.VirtualScheduler, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(sched.Active()) == n }, time.Second, time.Millisecond)
}

func TestRenderClock(t *testing.T) {
	src := clock.NewManualClock(time.Date(2024, time.March, 4, 15, 30, 7, 0, time.Local))
	c := wallclock.New(src, scheduler.NewVirtualScheduler())
	c.Tick()

	scheme, err := theme.GetColorSchemeForTheme(theme.DefaultDarkTheme)
	require.NoError(t, err)

	digital := RenderClock(c.Snapshot(), false, scheme)
	assert.Contains(t, digital, "03:30:07 PM")
	assert.Contains(t, digital, "Monday, March 4, 2024")

	analog := RenderClock(c.Snapshot(), true, scheme)
	assert.Greater(t, strings.Count(analog, "\n"), strings.Count(digital, "\n"))
	assert.Contains(t, analog, "12")
}

func TestRunTimerPlain_Completes(t *testing.T) {
	var notes bytes.Buffer
	ui.InitFormatter(ui.Options{Out: &notes})
	t.Cleanup(func() { ui.InitFormatter(ui.Options{}) })

	sched := scheduler.NewVirtualScheduler()
	var out bytes.Buffer
	result := make(chan error, 1)
	go func() { result <- RunTimerPlain(context.Background(), plainConfig(), sched, &out, nil) }()

	waitForRegistrations(t, sched, 1)
	sched.Advance(3 * time.Second)

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("countdown did not finish")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{"00:00:03", "00:00:02", "00:00:01", "00:00:00"}, lines)
	assert.Contains(t, notes.String(), "Timer complete!")
	assert.Empty(t, sched.Active())
}

func TestRunTimerPlain_Cancelled(t *testing.T) {
	ui.InitFormatter(ui.Options{Out: &bytes.Buffer{}})
	t.Cleanup(func() { ui.InitFormatter(ui.Options{}) })

	sched := scheduler.NewVirtualScheduler()
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	result := make(chan error, 1)
	go func() { result <- RunTimerPlain(ctx, plainConfig(), sched, &out, nil) }()

	waitForRegistrations(t, sched, 1)
	sched.Advance(time.Second)
	cancel()

	require.NoError(t, <-result)
	assert.Contains(t, out.String(), "Paused with 00:00:02 remaining")
	assert.Empty(t, sched.Active())
}

func TestRunTimerPlain_ZeroDuration(t *testing.T) {
	ui.InitFormatter(ui.Options{Out: &bytes.Buffer{}})
	t.Cleanup(func() { ui.InitFormatter(ui.Options{}) })

	cfg := plainConfig()
	cfg.Timer.Seconds = 0

	err := RunTimerPlain(context.Background(), cfg, scheduler.NewVirtualScheduler(), &bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidConfiguration)
	assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
}

func TestRunStopwatchPlain(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	result := make(chan error, 1)
	go func() { result <- RunStopwatchPlain(ctx, plainConfig(), sched, &out) }()

	// The reporter and the stopwatch tick.
	waitForRegistrations(t, sched, 2)
	sched.Advance(2 * time.Second)
	cancel()

	require.NoError(t, <-result)
	assert.Contains(t, out.String(), "Total 00:00:02.00")
	assert.Empty(t, sched.Active())
}

func TestRunStopwatchPlain_InvalidLapOrder(t *testing.T) {
	cfg := plainConfig()
	cfg.Stopwatch.LapOrder = "sideways"

	err := RunStopwatchPlain(context.Background(), cfg, scheduler.NewVirtualScheduler(), &bytes.Buffer{})
	assert.ErrorIs(t, err, errUtils.ErrInvalidLapOrder)
}
