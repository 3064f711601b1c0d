package ui

import log "github.com/charmbracelet/log"

// ToastNotifier delivers widget notifications as toasts on the UI stream.
type ToastNotifier struct {
	Icon string
}

// Notify writes message as a toast. Write failures are logged and dropped.
func (n ToastNotifier) Notify(message string) {
	icon := n.Icon
	if icon == "" {
		icon = IconBell
	}
	if err := Toast(icon, message); err != nil {
		log.Debug("Failed to write toast", "message", message, "error", err)
	}
}
