package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudposse/ticktock/pkg/widget"
)

const toastQueueSize = 8

type (
	refreshMsg struct{}
	toastMsg   string
)

// Events carries widget activity from scheduler goroutines into the
// bubbletea loop. Refreshes coalesce: any number of publishes between two
// renders cost one redraw. Senders never block.
type Events struct {
	refresh chan struct{}
	toasts  chan string
	done    chan struct{}
}

var _ widget.Notifier = (*Events)(nil)

// NewEvents returns an open event hub.
func NewEvents() *Events {
	return &Events{
		refresh: make(chan struct{}, 1),
		toasts:  make(chan string, toastQueueSize),
		done:    make(chan struct{}),
	}
}

// Refresh requests a redraw.
func (e *Events) Refresh() {
	select {
	case e.refresh <- struct{}{}:
	default:
	}
}

// Notify queues a toast. Toasts beyond the queue size are dropped.
func (e *Events) Notify(message string) {
	select {
	case e.toasts <- message:
	default:
	}
}

// Close releases any command waiting on the hub.
func (e *Events) Close() {
	select {
	case <-e.done:
	default:
		close(e.done)
	}
}

// Publisher returns a widget publisher that requests a redraw per snapshot.
func Publisher[S any](e *Events) widget.Publisher[S] {
	return widget.PublisherFunc[S](func(S) { e.Refresh() })
}

func (e *Events) waitForRefresh() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-e.refresh:
			return refreshMsg{}
		case <-e.done:
			return nil
		}
	}
}

func (e *Events) waitForToast() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-e.toasts:
			return toastMsg(msg)
		case <-e.done:
			return nil
		}
	}
}
