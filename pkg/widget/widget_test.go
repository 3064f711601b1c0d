package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/ticktock/pkg/scheduler"
)

func TestRunState_String(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Paused", Paused.String())
	assert.Equal(t, "Completed", Completed.String())
	assert.Equal(t, "Unknown", RunState(42).String())
}

func TestPublisherFunc(t *testing.T) {
	var got []int
	var p Publisher[int] = PublisherFunc[int](func(n int) { got = append(got, n) })
	p.Publish(1)
	p.Publish(2)
	assert.Equal(t, []int{1, 2}, got)

	assert.NotPanics(t, func() { NopPublisher[string]().Publish("x") })
}

func TestRegistration_StaleGenerationIgnored(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	reg := NewRegistration(sched)
	applied := 0
	tick := func(gen uint64) {
		if reg.Current(gen) {
			applied++
		}
	}

	reg.Attach(time.Second, tick)
	first := reg.Handle()
	require.True(t, reg.Attached())

	sched.Advance(time.Second)
	assert.Equal(t, 1, applied)

	reg.Detach()
	assert.False(t, reg.Attached())
	sched.Deliver(first)
	assert.Equal(t, 1, applied, "tick after detach must be ignored")

	reg.Attach(time.Second, tick)
	sched.Deliver(first)
	assert.Equal(t, 1, applied, "tick from an older generation must be ignored")

	sched.Advance(time.Second)
	assert.Equal(t, 2, applied)
}

func TestRegistration_AttachReplaces(t *testing.T) {
	sched := scheduler.NewVirtualScheduler()
	reg := NewRegistration(sched)

	reg.Attach(time.Second, func(uint64) {})
	reg.Attach(time.Second, func(uint64) {})

	assert.Len(t, sched.Active(), 1)
	reg.Detach()
	reg.Detach()
	assert.Empty(t, sched.Active())
	assert.Zero(t, reg.Handle())
}
