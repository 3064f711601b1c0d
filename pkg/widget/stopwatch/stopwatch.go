// Package stopwatch implements the stopwatch widget: an elapsed-time counter
// driven by scheduler ticks, with lap capture.
package stopwatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/cloudposse/ticktock/pkg/elapsed"
	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/widget"
)

// DefaultTickPeriod is the stopwatch resolution.
const DefaultTickPeriod = 10 * time.Millisecond

// Snapshot is what the rendering layer draws.
type Snapshot struct {
	State   widget.RunState
	Elapsed time.Duration
	Fields  elapsed.Fields
	// Laps are in the configured LapOrder.
	Laps  []Lap
	Order LapOrder
}

// Stopwatch counts elapsed time while Running. Elapsed time only changes on
// ticks received while Running, so pausing never loses or double-counts time
// beyond one tick period. It is safe for concurrent use.
type Stopwatch struct {
	mu        sync.Mutex
	reg       *widget.Registration
	period    time.Duration
	order     LapOrder
	publisher widget.Publisher[Snapshot]
	notifier  widget.Notifier

	state   widget.RunState
	elapsed time.Duration
	laps    []Lap // oldest first
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithPublisher sets where snapshots are sent after each change.
func WithPublisher(p widget.Publisher[Snapshot]) Option {
	return func(s *Stopwatch) { s.publisher = p }
}

// WithNotifier receives "Lap N recorded" messages.
func WithNotifier(n widget.Notifier) Option {
	return func(s *Stopwatch) { s.notifier = n }
}

// WithTickPeriod overrides DefaultTickPeriod. Non-positive values are ignored.
func WithTickPeriod(d time.Duration) Option {
	return func(s *Stopwatch) {
		if d > 0 {
			s.period = d
		}
	}
}

// WithLapOrder sets how Laps are listed.
func WithLapOrder(o LapOrder) Option {
	return func(s *Stopwatch) { s.order = o }
}

// New returns an Idle stopwatch.
func New(sched scheduler.Scheduler, opts ...Option) *Stopwatch {
	s := &Stopwatch{
		reg:       widget.NewRegistration(sched),
		period:    DefaultTickPeriod,
		publisher: widget.NopPublisher[Snapshot](),
		notifier:  widget.NopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins or resumes counting. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	if s.state == widget.Running {
		s.mu.Unlock()
		return
	}
	s.state = widget.Running
	s.reg.Attach(s.period, s.tick)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	log.Debug("Stopwatch started", "widget", "stopwatch", "elapsed", snap.Elapsed)
	s.publisher.Publish(snap)
}

// Pause freezes the elapsed time. It is a no-op unless Running.
func (s *Stopwatch) Pause() {
	s.mu.Lock()
	if s.state != widget.Running {
		s.mu.Unlock()
		return
	}
	s.state = widget.Paused
	s.reg.Detach()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	log.Debug("Stopwatch paused", "widget", "stopwatch", "elapsed", snap.Elapsed)
	s.publisher.Publish(snap)
}

// Toggle pauses a running stopwatch and starts any other.
func (s *Stopwatch) Toggle() {
	if s.State() == widget.Running {
		s.Pause()
		return
	}
	s.Start()
}

// Reset returns to Idle from any state, zeroing the time and clearing laps.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	s.state = widget.Idle
	s.elapsed = 0
	s.laps = nil
	s.reg.Detach()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	log.Debug("Stopwatch reset", "widget", "stopwatch")
	s.publisher.Publish(snap)
}

// Lap records the current elapsed time. It returns false, recording nothing,
// unless the stopwatch is Running.
func (s *Stopwatch) Lap() (Lap, bool) {
	s.mu.Lock()
	if s.state != widget.Running {
		s.mu.Unlock()
		return Lap{}, false
	}
	lap := Lap{Number: len(s.laps) + 1, Elapsed: s.elapsed, Split: s.elapsed}
	if n := len(s.laps); n > 0 {
		lap.Split = s.elapsed - s.laps[n-1].Elapsed
	}
	s.laps = append(s.laps, lap)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	log.Debug("Lap recorded", "widget", "stopwatch", "number", lap.Number, "elapsed", lap.Elapsed)
	s.publisher.Publish(snap)
	s.notifier.Notify(fmt.Sprintf("Lap %d recorded", lap.Number))
	return lap, true
}

func (s *Stopwatch) tick(gen uint64) {
	s.mu.Lock()
	if !s.reg.Current(gen) || s.state != widget.Running {
		s.mu.Unlock()
		log.Trace("Ignoring stray tick", "widget", "stopwatch", "generation", gen)
		return
	}
	s.elapsed += s.period
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publisher.Publish(snap)
}

// State returns the current run state.
func (s *Stopwatch) State() widget.RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the accumulated time.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Laps returns the recorded laps in the configured order.
func (s *Stopwatch) Laps() []Lap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ordered(s.laps, s.order)
}

// Snapshot returns the current derived values.
func (s *Stopwatch) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Stopwatch) snapshotLocked() Snapshot {
	return Snapshot{
		State:   s.state,
		Elapsed: s.elapsed,
		Fields:  elapsed.FromDuration(s.elapsed),
		Laps:    ordered(s.laps, s.order),
		Order:   s.order,
	}
}
