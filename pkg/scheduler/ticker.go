package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cloudposse/ticktock/pkg/logger"
)

// TickerScheduler runs each registration on its own goroutine and time.Ticker.
//
// Callbacks of one registration never overlap. Cancel takes effect before the
// next dispatch but does not wait for a callback that is already running, so
// callers may cancel while holding locks their callback also takes.
type TickerScheduler struct {
	mu      sync.Mutex
	next    Handle
	entries map[Handle]*tickerEntry
}

type tickerEntry struct {
	cancelled atomic.Bool
	stop      chan struct{}
}

var _ Scheduler = (*TickerScheduler)(nil)

// NewTickerScheduler returns a scheduler with no registrations.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{entries: make(map[Handle]*tickerEntry)}
}

func (s *TickerScheduler) Register(fn func(), period time.Duration) Handle {
	checkPeriod(period)

	entry := &tickerEntry{stop: make(chan struct{})}

	s.mu.Lock()
	s.next++
	h := s.next
	s.entries[h] = entry
	s.mu.Unlock()

	logger.Trace("Registered periodic callback", "handle", h, "period", period)

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-entry.stop:
				return
			case <-ticker.C:
				if entry.cancelled.Load() {
					return
				}
				fn()
			}
		}
	}()

	return h
}

func (s *TickerScheduler) Cancel(h Handle) {
	s.mu.Lock()
	entry, ok := s.entries[h]
	delete(s.entries, h)
	s.mu.Unlock()

	if !ok {
		return
	}
	entry.cancelled.Store(true)
	close(entry.stop)
	logger.Trace("Cancelled periodic callback", "handle", h)
}

// Len returns the number of live registrations.
func (s *TickerScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close cancels every registration.
func (s *TickerScheduler) Close() {
	s.mu.Lock()
	handles := make([]Handle, 0, len(s.entries))
	for h := range s.entries {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		s.Cancel(h)
	}
}
