// Package widget holds the pieces shared by the clock, stopwatch and
// countdown state machines: the run state, the collaborator interfaces the
// rendering layer implements, and the tick registration guard.
package widget

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=widget.go -destination=mock/mock_widget.go -package=mock

import "time"

// RunState is the lifecycle stage of a time-tracking widget.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
	// Completed is terminal for the countdown only.
	Completed
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Notifier shows a short message to the user. Fire-and-forget.
type Notifier interface {
	Notify(message string)
}

// TonePlayer plays a tone. Fire-and-forget.
type TonePlayer interface {
	PlayTone(freqHz float64, d time.Duration)
}

// Publisher receives a snapshot after every state change.
type Publisher[S any] interface {
	Publish(snapshot S)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc[S any] func(S)

func (f PublisherFunc[S]) Publish(snapshot S) { f(snapshot) }

// NopNotifier discards messages.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}

// NopTonePlayer discards tones.
type NopTonePlayer struct{}

func (NopTonePlayer) PlayTone(float64, time.Duration) {}

// NopPublisher returns a Publisher that discards snapshots.
func NopPublisher[S any]() Publisher[S] {
	return PublisherFunc[S](func(S) {})
}
