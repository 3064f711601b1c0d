// Package audio renders widget tones as terminal bells.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"

	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/widget"
)

const queueSize = 8

type tone struct {
	freq float64
	d    time.Duration
}

// Bell plays each tone as a BEL control character followed by a pause of the
// tone's length, so consecutive tones (a chime) stay audibly distinct.
// Terminals cannot pitch the bell, so the frequency is only logged.
// Tones are queued and played in order on a background goroutine; when the
// queue is full new tones are dropped.
type Bell struct {
	out    io.Writer
	queue  chan tone
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	sleep  func(time.Duration)
}

var _ widget.TonePlayer = (*Bell)(nil)

// NewBell starts a bell writing to out. Call Close to stop it.
func NewBell(out io.Writer) *Bell {
	b := &Bell{
		out:   out,
		queue: make(chan tone, queueSize),
		sleep: time.Sleep,
	}
	b.wg.Add(1)
	go b.run()
	return b
}

// PlayTone queues a tone without blocking. A nil Bell is silent.
func (b *Bell) PlayTone(freqHz float64, d time.Duration) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.queue <- tone{freq: freqHz, d: d}:
	default:
		log.Trace("Dropping tone, bell queue full", "freq_hz", freqHz)
	}
}

// Close stops accepting tones and blocks until the queued ones have played.
func (b *Bell) Close() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.queue)
	}
	b.mu.Unlock()
	b.wg.Wait()
	return nil
}

func (b *Bell) run() {
	defer b.wg.Done()
	for t := range b.queue {
		log.Trace("Playing tone", "freq_hz", t.freq, "duration", t.d)
		if _, err := b.out.Write([]byte{ansi.BEL}); err != nil {
			log.Debug("Failed to ring bell", "error", err)
		}
		b.sleep(t.d)
	}
}

// Player returns a bell on out when enabled, or nil so widgets stay silent.
func Player(enabled bool, out io.Writer) *Bell {
	if !enabled {
		return nil
	}
	return NewBell(out)
}
