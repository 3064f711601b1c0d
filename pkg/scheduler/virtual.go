package scheduler

import (
	"sort"
	"sync"
	"time"
)

// VirtualScheduler is a deterministic Scheduler driven by Advance.
// Callbacks run on the goroutine that calls Advance or Deliver.
type VirtualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	next    Handle
	live    map[Handle]*virtualEntry
	history map[Handle]func()
}

type virtualEntry struct {
	fn     func()
	period time.Duration
	due    time.Duration
}

var _ Scheduler = (*VirtualScheduler)(nil)

// NewVirtualScheduler returns a scheduler at virtual time zero.
func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{
		live:    make(map[Handle]*virtualEntry),
		history: make(map[Handle]func()),
	}
}

func (s *VirtualScheduler) Register(fn func(), period time.Duration) Handle {
	checkPeriod(period)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.live[h] = &virtualEntry{fn: fn, period: period, due: s.now + period}
	s.history[h] = fn
	return h
}

func (s *VirtualScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, h)
}

// Advance moves virtual time forward by d, firing every callback that comes
// due on the way in deadline order. Ties fire in registration order.
// Callbacks may register or cancel; a cancellation takes effect immediately.
func (s *VirtualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		_, entry := s.earliestLocked(target)
		if entry == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = entry.due
		entry.due += entry.period
		fn := entry.fn
		s.mu.Unlock()

		fn()
	}
}

func (s *VirtualScheduler) earliestLocked(target time.Duration) (Handle, *virtualEntry) {
	var (
		bestHandle Handle
		best       *virtualEntry
	)
	for h, e := range s.live {
		if e.due > target {
			continue
		}
		if best == nil || e.due < best.due || (e.due == best.due && h < bestHandle) {
			bestHandle, best = h, e
		}
	}
	return bestHandle, best
}

// Deliver invokes h's callback once, even if h was cancelled. It models a
// tick that was already queued when the registration was cancelled.
// Unknown handles are ignored.
func (s *VirtualScheduler) Deliver(h Handle) {
	s.mu.Lock()
	fn := s.history[h]
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Active returns the live handles in registration order.
func (s *VirtualScheduler) Active() []Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles := make([]Handle, 0, len(s.live))
	for h := range s.live {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

// Last returns the most recently issued handle, or zero if none.
func (s *VirtualScheduler) Last() Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Now returns the virtual time elapsed since creation.
func (s *VirtualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}
