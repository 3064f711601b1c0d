// Package countdown implements the countdown timer widget and the derived
// values its hourglass view draws.
package countdown

import (
	"sync"
	"time"

	"github.com/google/uuid"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/elapsed"
	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/scheduler"
	"github.com/cloudposse/ticktock/pkg/widget"
)

// DefaultTickPeriod is how much time each tick removes.
const DefaultTickPeriod = time.Second

const (
	MessageComplete     = "Timer complete!"
	MessageInvalidInput = "Please set a valid time"
)

// Chime is the completion arpeggio (C5, E5, G5).
var Chime = []float64{523.25, 659.25, 783.99}

// ChimeNoteDuration is the length of each Chime note.
const ChimeNoteDuration = 200 * time.Millisecond

// SandLevels are the hourglass fill percentages.
type SandLevels struct {
	Top    float64
	Bottom float64
}

// Snapshot is what the rendering layer draws.
type Snapshot struct {
	State     widget.RunState
	Config    Config
	Initial   time.Duration
	Remaining time.Duration
	Fields    elapsed.Fields
	Progress  float64
	Sand      SandLevels
	RunID     string
}

// Timer counts a configured duration down to zero. The config can only be
// edited while Idle. It is safe for concurrent use.
type Timer struct {
	mu        sync.Mutex
	reg       *widget.Registration
	period    time.Duration
	policy    ResetPolicy
	publisher widget.Publisher[Snapshot]
	notifier  widget.Notifier
	tones     widget.TonePlayer

	state     widget.RunState
	config    Config
	initial   time.Duration
	remaining time.Duration
	runID     string
}

// Option configures a Timer.
type Option func(*Timer)

// WithPublisher sets where snapshots are sent after each change.
func WithPublisher(p widget.Publisher[Snapshot]) Option {
	return func(t *Timer) { t.publisher = p }
}

// WithNotifier receives completion and rejection messages.
func WithNotifier(n widget.Notifier) Option {
	return func(t *Timer) { t.notifier = n }
}

// WithTonePlayer plays Chime on completion. A nil player disables it.
func WithTonePlayer(p widget.TonePlayer) Option {
	return func(t *Timer) { t.tones = p }
}

// WithResetPolicy decides whether Reset keeps the entered config.
func WithResetPolicy(p ResetPolicy) Option {
	return func(t *Timer) { t.policy = p }
}

// WithTickPeriod overrides DefaultTickPeriod. Non-positive values are ignored.
func WithTickPeriod(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.period = d
		}
	}
}

// WithConfig sets the initial config, clamped.
func WithConfig(c Config) Option {
	return func(t *Timer) { t.config = c.Clamp() }
}

// New returns an Idle timer.
func New(sched scheduler.Scheduler, opts ...Option) *Timer {
	t := &Timer{
		reg:       widget.NewRegistration(sched),
		period:    DefaultTickPeriod,
		publisher: widget.NopPublisher[Snapshot](),
		notifier:  widget.NopNotifier{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetHours sets the hours field, clamped to 0-23. Like every edit it only
// applies while Idle and reports whether it did.
func (t *Timer) SetHours(h int) bool {
	return t.edit(func(c *Config) { c.Hours = h })
}

// SetMinutes sets the minutes field, clamped to 0-59.
func (t *Timer) SetMinutes(m int) bool {
	return t.edit(func(c *Config) { c.Minutes = m })
}

// SetSeconds sets the seconds field, clamped to 0-59.
func (t *Timer) SetSeconds(s int) bool {
	return t.edit(func(c *Config) { c.Seconds = s })
}

// SetConfig replaces the whole config.
func (t *Timer) SetConfig(cfg Config) bool {
	return t.edit(func(c *Config) { *c = cfg })
}

// Adjust adds delta to one field. The result is clamped, not wrapped.
func (t *Timer) Adjust(field Field, delta int) bool {
	return t.edit(func(c *Config) {
		switch field {
		case FieldHours:
			c.Hours += delta
		case FieldMinutes:
			c.Minutes += delta
		case FieldSeconds:
			c.Seconds += delta
		}
	})
}

func (t *Timer) edit(apply func(*Config)) bool {
	t.mu.Lock()
	if t.state != widget.Idle {
		t.mu.Unlock()
		return false
	}
	cfg := t.config
	apply(&cfg)
	t.config = cfg.Clamp()
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.publisher.Publish(snap)
	return true
}

// Start begins a run from Idle or resumes from Paused. From Idle a zero
// config is rejected with an error marked ErrInvalidConfiguration and
// nothing changes. Starting while Running or Completed is a no-op.
func (t *Timer) Start() error {
	t.mu.Lock()
	switch t.state {
	case widget.Running, widget.Completed:
		t.mu.Unlock()
		return nil
	case widget.Paused:
		t.state = widget.Running
		t.reg.Attach(t.period, t.tick)
		snap := t.snapshotLocked()
		t.mu.Unlock()

		log.Debug("Timer resumed", "widget", "timer", "run_id", snap.RunID, "remaining", snap.Remaining)
		t.publisher.Publish(snap)
		return nil
	}

	d := t.config.Duration()
	if d == 0 {
		t.mu.Unlock()
		t.notifier.Notify(MessageInvalidInput)
		return errUtils.Build(errUtils.ErrZeroDuration).
			WithSentinel(errUtils.ErrInvalidConfiguration).
			WithTitle("Timer Error").
			WithExplanation("The countdown is set to 0 seconds.").
			WithHint("Set hours, minutes or seconds to a value above zero.").
			WithContext("widget", "timer").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	t.initial = d
	t.remaining = d
	t.runID = uuid.NewString()
	t.state = widget.Running
	t.reg.Attach(t.period, t.tick)
	snap := t.snapshotLocked()
	t.mu.Unlock()

	log.Debug("Timer started", "widget", "timer", "run_id", snap.RunID, "duration", d)
	t.publisher.Publish(snap)
	return nil
}

// Pause freezes the remaining time. It is a no-op unless Running.
func (t *Timer) Pause() {
	t.mu.Lock()
	if t.state != widget.Running {
		t.mu.Unlock()
		return
	}
	t.state = widget.Paused
	t.reg.Detach()
	snap := t.snapshotLocked()
	t.mu.Unlock()

	log.Debug("Timer paused", "widget", "timer", "run_id", snap.RunID, "remaining", snap.Remaining)
	t.publisher.Publish(snap)
}

// Toggle pauses a running timer and starts any other.
func (t *Timer) Toggle() error {
	if t.State() == widget.Running {
		t.Pause()
		return nil
	}
	return t.Start()
}

// Reset returns to Idle from any state. The config is kept or cleared
// according to the ResetPolicy.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.reg.Detach()
	t.state = widget.Idle
	t.initial = 0
	t.remaining = 0
	t.runID = ""
	if t.policy == ClearConfig {
		t.config = Config{}
	}
	snap := t.snapshotLocked()
	t.mu.Unlock()

	log.Debug("Timer reset", "widget", "timer", "reset_policy", t.policy)
	t.publisher.Publish(snap)
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	if !t.reg.Current(gen) || t.state != widget.Running {
		t.mu.Unlock()
		log.Trace("Ignoring stray tick", "widget", "timer", "generation", gen)
		return
	}
	t.remaining -= min(t.period, t.remaining)
	completed := t.remaining == 0
	if completed {
		t.state = widget.Completed
		t.reg.Detach()
	}
	snap := t.snapshotLocked()
	tones := t.tones
	t.mu.Unlock()

	t.publisher.Publish(snap)
	if !completed {
		return
	}

	log.Info("Timer complete", "widget", "timer", "run_id", snap.RunID, "duration", snap.Initial)
	t.notifier.Notify(MessageComplete)
	if tones != nil {
		for _, freq := range Chime {
			tones.PlayTone(freq, ChimeNoteDuration)
		}
	}
}

// State returns the current run state.
func (t *Timer) State() widget.RunState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Config returns the entered config.
func (t *Timer) Config() Config {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.config
}

// Remaining returns the time left in the current run.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Initial returns the length of the current run, fixed at start.
func (t *Timer) Initial() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initial
}

// Progress returns the elapsed share of the run as a percentage in [0, 100].
func (t *Timer) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return progress(t.initial, t.remaining)
}

// SandLevels returns the hourglass fill levels.
func (t *Timer) SandLevels() SandLevels {
	t.mu.Lock()
	defer t.mu.Unlock()
	return sandLevels(t.initial, t.remaining)
}

// RunID identifies the current run for log correlation. It is empty while Idle.
func (t *Timer) RunID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runID
}

// Snapshot returns the current derived values.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Timer) snapshotLocked() Snapshot {
	shown := t.remaining
	if t.state == widget.Idle {
		shown = t.config.Duration()
	}
	return Snapshot{
		State:     t.state,
		Config:    t.config,
		Initial:   t.initial,
		Remaining: t.remaining,
		Fields:    elapsed.FromDuration(shown),
		Progress:  progress(t.initial, t.remaining),
		Sand:      sandLevels(t.initial, t.remaining),
		RunID:     t.runID,
	}
}

func progress(initial, remaining time.Duration) float64 {
	if initial <= 0 {
		return 0
	}
	p := float64(initial-remaining) / float64(initial) * 100
	return min(max(p, 0), 100)
}

// sandLevels keeps all sand on top until a run has started.
func sandLevels(initial, remaining time.Duration) SandLevels {
	if initial <= 0 {
		return SandLevels{Top: 100, Bottom: 0}
	}
	p := progress(initial, remaining)
	return SandLevels{Top: 100 - p, Bottom: p}
}
