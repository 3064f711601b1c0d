package widget

import (
	"time"

	"github.com/cloudposse/ticktock/pkg/scheduler"
)

// Registration tracks a widget's single scheduler registration.
//
// Every Attach bumps a generation number that is handed to the tick
// callback. A tick carrying an older generation, or arriving while detached,
// is stale and must be ignored; this covers ticks that were already queued
// when the registration was cancelled.
//
// Registration is not safe for concurrent use; callers guard it with the
// same lock that protects the rest of their state.
type Registration struct {
	sched  scheduler.Scheduler
	handle scheduler.Handle
	gen    uint64
}

// NewRegistration returns a detached registration on sched.
func NewRegistration(sched scheduler.Scheduler) *Registration {
	return &Registration{sched: sched}
}

// Attach registers tick at period, replacing any current registration.
func (r *Registration) Attach(period time.Duration, tick func(gen uint64)) {
	r.Detach()
	r.gen++
	gen := r.gen
	r.handle = r.sched.Register(func() { tick(gen) }, period)
}

// Detach cancels the current registration, if any.
func (r *Registration) Detach() {
	if r.handle == 0 {
		return
	}
	r.sched.Cancel(r.handle)
	r.handle = 0
}

// Attached reports whether a registration is live.
func (r *Registration) Attached() bool {
	return r.handle != 0
}

// Current reports whether a tick from generation gen should be applied.
func (r *Registration) Current(gen uint64) bool {
	return r.handle != 0 && gen == r.gen
}

// Handle returns the live handle, or zero when detached.
func (r *Registration) Handle() scheduler.Handle {
	return r.handle
}
