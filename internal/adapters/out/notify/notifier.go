// Package notify implements the best-effort local notification channel.
// Alerts land in the structured log; operational tooling tails them from
// there. The Notifier contract has no error path, matching the
// fire-and-forget semantics of the monitoring pipeline.
package notify

import (
	"log/slog"
)

// SlogNotifier writes notifications to a structured logger.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier backed by the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// Notify emits the message at info level.
func (n *SlogNotifier) Notify(message string) {
	n.logger.Info(message)
}
