package stopwatch

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/widget"
	"github.com/cloudposse/ticktock/pkg/widget/mock"
)

func advanceTicks(sched *scheduler.VirtualScheduler, n int) {
	sched.Advance(time.Duration(n) * DefaultTickPeriod)
}

func TestStopwatch_PauseResumeKeepsTime(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	sw := New(sched)

	sw.Start()
	advanceTicks(sched, 5)
	assert.Equal(t, 50*time.Millisecond, sw.Elapsed())

	sw.Pause()
	assert.Equal(t, widget.Paused, sw.State())
	advanceTicks(sched, 7)
	assert.Equal(t, 50*time.Millisecond, sw.Elapsed(), "paused stopwatch must not advance")

	sw.Start()
	advanceTicks(sched, 3)
	assert.Equal(t, 80*time.Millisecond, sw.Elapsed())
}

func TestStopwatch_StartIsIdempotent(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	sw := New(sched)

	sw.Start()
	sw.Start()
	require.Len(t, sched.Active(), 1)

	advanceTicks(sched, 2)
	assert.Equal(t, 20*time.Millisecond, sw.Elapsed())
}

func TestStopwatch_PauseOutsideRunningIsNoop(t *testing.T) {
	sw := New(scheduler.NewVirtualScheduler())
	sw.Pause()
	assert.Equal(t, widget.Idle, sw.State())
}

func TestStopwatch_Toggle(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	sw := New(sched)

	sw.Toggle()
	assert.Equal(t, widget.Running, sw.State())
	sw.Toggle()
	assert.Equal(t, widget.Paused, sw.State())
	sw.Toggle()
	assert.Equal(t, widget.Running, sw.State())
}

func TestStopwatch_LapOnlyWhileRunning(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	sw := New(sched)

	_, ok := sw.Lap()
	assert.False(t, ok, "lap while Idle")
	assert.Empty(t, sw.Laps())

	sw.Start()
	advanceTicks(sched, 4)
	_, ok = sw.Lap()
	require.True(t, ok)

	sw.Pause()
	_, ok = sw.Lap()
	assert.False(t, ok, "lap while Paused")
	assert.Len(t, sw.Laps(), 1)
}

func TestStopwatch_LapSplitsAndOrder(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	sw := New(sched)

	sw.Start()
	advanceTicks(sched, 10)
	sw.Lap()
	advanceTicks(sched, 25)
	sw.Lap()
	advanceTicks(sched, 5)
	sw.Lap()

	want := []Lap{
		{Number: 3, Elapsed: 400 * time.Millisecond, Split: 50 * time.Millisecond},
		{Number: 2, Elapsed: 350 * time.Millisecond, Split: 250 * time.Millisecond},
		{Number: 1, Elapsed: 100 * time.Millisecond, Split: 100 * time.Millisecond},
	}
	if diff := cmp.Diff(want, sw.Laps()); diff != "" {
		t.Errorf("Laps() mismatch (-want +got):\n%s", diff)
	}

	last := New(scheduler.NewVirtualScheduler(), WithLapOrder(NewestLast))
	last.laps = []Lap{want[2], want[1], want[0]}
	assert.Equal(t, []Lap{want[2], want[1], want[0]}, last.Laps())
}

func TestStopwatch_LapsNonIncreasingNewestFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sched := scheduler.NewVirtualScheduler()
	sw := New(sched)
	sw.Start()

	for i := 0; i < 50; i++ {
		advanceTicks(sched, rng.Intn(5))
		if rng.Intn(3) == 0 {
			sw.Pause()
			advanceTicks(sched, rng.Intn(5))
			sw.Start()
		}
		lap, ok := sw.Lap()
		require.True(t, ok)
		assert.LessOrEqual(t, lap.Elapsed, sw.Elapsed())
	}

	laps := sw.Laps()
	for i := 0; i+1 < len(laps); i++ {
		assert.GreaterOrEqual(t, laps[i].Elapsed, laps[i+1].Elapsed)
		assert.Greater(t, laps[i].Number, laps[i+1].Number)
	}
}

func TestStopwatch_ResetFromAnyState(t *testing.T) {
	setups := map[string]func(sw *Stopwatch, sched *scheduler.VirtualScheduler){
		"idle": func(*Stopwatch, *scheduler.VirtualScheduler) {},
		"running": func(sw *Stopwatch, sched *scheduler.VirtualScheduler) {
			sw.Start()
			advanceTicks(sched, 3)
			sw.Lap()
		},
		"paused": func(sw *Stopwatch, sched *scheduler.VirtualScheduler) {
			sw.Start()
			advanceTicks(sched, 3)
			sw.Lap()
			sw.Pause()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			sched := scheduler.NewVirtualScheduler()
			sw := New(sched)
			setup(sw, sched)
			h := sched.Last()

			sw.Reset()

			assert.Equal(t, widget.Idle, sw.State())
			assert.Zero(t, sw.Elapsed())
			assert.Empty(t, sw.Laps())
			assert.Empty(t, sched.Active())

			if h != 0 {
				sched.Deliver(h)
			}
			advanceTicks(sched, 10)
			assert.Zero(t, sw.Elapsed(), "no change after reset even with a delivered tick")
		})
	}
}

func TestStopwatch_StrayTickAfterPause(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	sw := New(sched)
	sw.Start()
	first := sched.Last()
	advanceTicks(sched, 2)
	sw.Pause()

	sched.Deliver(first)
	assert.Equal(t, 20*time.Millisecond, sw.Elapsed())

	sw.Start()
	sched.Deliver(first)
	assert.Equal(t, 20*time.Millisecond, sw.Elapsed(), "tick from a previous run is stale")
}

func TestStopwatch_NotifiesLaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockNotifier(ctrl)
	gomock.InOrder(
		notifier.EXPECT().Notify("Lap 1 recorded"),
		notifier.EXPECT().Notify("Lap 2 recorded"),
	)

	sched := scheduler.NewVirtualScheduler()
	sw := New(sched, WithNotifier(notifier))
	sw.Start()
	sw.Lap()
	advanceTicks(sched, 1)
	sw.Lap()
}

func TestStopwatch_PublishesSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mock.NewMockPublisher[Snapshot](ctrl)

	var got []Snapshot
	pub.EXPECT().Publish(gomock.Any()).Do(func(s Snapshot) { got = append(got, s) }).Times(4)

	sched := scheduler.NewVirtualScheduler()
	sw := New(sched, WithPublisher(pub))
	sw.Start()
	advanceTicks(sched, 2)
	sw.Pause()

	require.Len(t, got, 4)
	assert.Equal(t, widget.Running, got[0].State)
	assert.Equal(t, "00:00:00.02", got[2].Fields.String())
	assert.Equal(t, widget.Paused, got[3].State)
}

func TestStopwatch_CustomTickPeriod(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	sw := New(sched, WithTickPeriod(100*time.Millisecond), WithTickPeriod(0))
	sw.Start()
	sched.Advance(time.Second)
	assert.Equal(t, time.Second, sw.Elapsed())
}

func TestParseLapOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    LapOrder
		wantErr bool
	}{
		{"", NewestFirst, false},
		{"newest-first", NewestFirst, false},
		{"Newest_First", NewestFirst, false},
		{"newest-last", NewestLast, false},
		{" NEWEST-LAST ", NewestLast, false},
		{"oldest", NewestFirst, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLapOrder(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errUtils.ErrInvalidLapOrder)
				assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "newest-last", NewestLast.String())
	assert.Equal(t, "newest-first", NewestFirst.String())
}
