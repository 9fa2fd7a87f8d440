// Package notify sends desktop notifications.
package notify

import (
	"io"
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Notifier shows a desktop notification. Failures are logged and dropped.
type Notifier struct {
	enabled bool
	send    func(title, message string) error
	logger  *slog.Logger
}

func New(enabled bool, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Notifier{
		enabled: enabled,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		logger: logger,
	}
}

// Send reports whether a notification was delivered.
func (n *Notifier) Send(title, message string) bool {
	if n == nil || !n.enabled {
		return false
	}
	if err := n.send(title, message); err != nil {
		n.logger.Debug("notification failed", "error", err)
		return false
	}
	return true
}
