// Package twilio provides the SMS sink used for critical delivery alerts.
//
// The adapter is a stand-in for a real provider integration: it honors the
// SMSSender contract (boolean acceptance, no error path) and logs the
// outbound message instead of calling out over the network. Swapping in a
// real client only touches this package.
package twilio

import (
	"log/slog"
)

// Config carries the provider settings for the SMS channel.
type Config struct {
	// AccountSID identifies the provider account. Unused by the stub.
	AccountSID string

	// AuthToken authenticates against the provider. Unused by the stub.
	AuthToken string

	// DefaultPhone is the number critical alerts escalate to.
	DefaultPhone string
}

// Adapter implements ports.SMSSender.
type Adapter struct {
	config Config
	logger *slog.Logger
}

// NewAdapter creates the SMS adapter.
func NewAdapter(config Config, logger *slog.Logger) *Adapter {
	return &Adapter{
		config: config,
		logger: logger,
	}
}

// SendSMS accepts the message for delivery and reports acceptance.
// The stub always accepts; a provider-backed implementation would report
// the gateway's acceptance here.
func (a *Adapter) SendSMS(message string, phoneNumber string) bool {
	a.logger.Info("sms dispatched",
		"phone", phoneNumber,
		"message", message)
	return true
}
