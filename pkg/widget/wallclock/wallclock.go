// Package wallclock tracks the current time of day for the clock widget and
// derives its digital labels and analog hand angles.
package wallclock

import (
	"fmt"
	"sync"
	"time"

	"github.com/cloudposse/ticktock/pkg/clock"
	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/widget"
)

const (
	// TickPeriod is how often an active clock re-samples the time source.
	TickPeriod = time.Second

	// DateLayout formats the long date line, e.g. "Monday, January 2, 2006".
	DateLayout = "Monday, January 2, 2006"

	TickToneHz   = 1000.0
	TockToneHz   = 800.0
	ToneDuration = 30 * time.Millisecond
)

// Snapshot is what the rendering layer draws.
type Snapshot struct {
	Sample      clock.WallClockSample
	HourLabel   string
	MinuteLabel string
	SecondLabel string
	PeriodLabel string
	DateLabel   string
	HourAngle   float64
	MinuteAngle float64
	SecondAngle float64
	Format24h   bool
	Active      bool
}

// Clock is the clock widget's state. It is safe for concurrent use.
type Clock struct {
	mu        sync.Mutex
	src       clock.Clock
	reg       *widget.Registration
	publisher widget.Publisher[Snapshot]
	tones     widget.TonePlayer
	format24h bool
	sample    clock.WallClockSample
	ticks     uint64
}

// Option configures a Clock.
type Option func(*Clock)

// WithPublisher sets where snapshots are sent after each change.
func WithPublisher(p widget.Publisher[Snapshot]) Option {
	return func(c *Clock) { c.publisher = p }
}

// With24Hour selects 24-hour labels.
func With24Hour(enabled bool) Option {
	return func(c *Clock) { c.format24h = enabled }
}

// WithSound plays an alternating tick/tock tone on every scheduled tick.
// A nil player disables sound.
func WithSound(p widget.TonePlayer) Option {
	return func(c *Clock) { c.tones = p }
}

// New returns an inactive clock reading from src.
func New(src clock.Clock, sched scheduler.Scheduler, opts ...Option) *Clock {
	c := &Clock{
		src:       src,
		reg:       widget.NewRegistration(sched),
		publisher: widget.NopPublisher[Snapshot](),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sample = clock.Sample(src.Now())
	return c
}

// Activate refreshes immediately so the first render is current, then
// re-samples every TickPeriod. Activating an active clock does nothing.
func (c *Clock) Activate() {
	c.mu.Lock()
	if c.reg.Attached() {
		c.mu.Unlock()
		return
	}
	c.reg.Attach(TickPeriod, c.scheduledTick)
	snap := c.refreshLocked()
	c.mu.Unlock()

	log.Debug("Clock activated", "widget", "clock", "format_24h", snap.Format24h)
	c.publisher.Publish(snap)
}

// Deactivate stops the periodic refresh. Deactivating twice is a no-op.
func (c *Clock) Deactivate() {
	c.mu.Lock()
	wasActive := c.reg.Attached()
	c.reg.Detach()
	c.mu.Unlock()

	if wasActive {
		log.Debug("Clock deactivated", "widget", "clock")
	}
}

// Active reports whether the clock is refreshing on a schedule.
func (c *Clock) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.Attached()
}

// Tick re-samples the time source and publishes, whether or not the clock
// is active.
func (c *Clock) Tick() {
	c.mu.Lock()
	snap := c.refreshLocked()
	c.mu.Unlock()

	c.publisher.Publish(snap)
}

func (c *Clock) scheduledTick(gen uint64) {
	c.mu.Lock()
	if !c.reg.Current(gen) {
		c.mu.Unlock()
		log.Trace("Ignoring stray tick", "widget", "clock", "generation", gen)
		return
	}
	snap := c.refreshLocked()
	c.ticks++
	freq := TickToneHz
	if c.ticks%2 == 0 {
		freq = TockToneHz
	}
	tones := c.tones
	c.mu.Unlock()

	c.publisher.Publish(snap)
	if tones != nil {
		tones.PlayTone(freq, ToneDuration)
	}
}

// Toggle24Hour flips between 12- and 24-hour labels and returns the new mode.
func (c *Clock) Toggle24Hour() bool {
	c.mu.Lock()
	c.format24h = !c.format24h
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publisher.Publish(snap)
	return snap.Format24h
}

// Snapshot returns the derived values for the last sample.
func (c *Clock) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Clock) refreshLocked() Snapshot {
	c.sample = clock.Sample(c.src.Now())
	return c.snapshotLocked()
}

func (c *Clock) snapshotLocked() Snapshot {
	s := c.sample
	a := ComputeAngles(s)
	return Snapshot{
		Sample:      s,
		HourLabel:   HourLabel(s.Hour24, c.format24h),
		MinuteLabel: fmt.Sprintf("%02d", s.Minute),
		SecondLabel: fmt.Sprintf("%02d", s.Second),
		PeriodLabel: PeriodLabel(s.Hour24, c.format24h),
		DateLabel:   s.Time.Format(DateLayout),
		HourAngle:   a.Hour,
		MinuteAngle: a.Minute,
		SecondAngle: a.Second,
		Format24h:   c.format24h,
		Active:      c.reg.Attached(),
	}
}
