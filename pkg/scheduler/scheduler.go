// Package scheduler invokes callbacks at a fixed period until cancelled.
//
// TickerScheduler is backed by time.Ticker and used at runtime.
// VirtualScheduler advances only when told to, so widget tests can step
// through ticks deterministically.
package scheduler

import "time"

// Handle identifies a registration. The zero Handle is never issued.
type Handle uint64

// Scheduler registers periodic callbacks.
type Scheduler interface {
	// Register invokes fn every period until the returned handle is cancelled.
	// It panics if period is not positive.
	Register(fn func(), period time.Duration) Handle
	// Cancel stops future invocations. Cancelling the zero Handle or an
	// unknown or already-cancelled handle is a no-op.
	Cancel(h Handle)
}

func checkPeriod(period time.Duration) {
	if period <= 0 {
		panic("scheduler: non-positive period")
	}
}
