package ports

// SMSSender is the outbound SMS sink for critical alerts.
// The contract mirrors the provider adapter: best-effort delivery, boolean
// acceptance, no error path. Transport details belong to the adapter.
type SMSSender interface {
	// SendSMS sends message to phoneNumber and reports acceptance.
	SendSMS(message string, phoneNumber string) bool
}

// Notifier is the best-effort local notification channel. Failures are
// swallowed by implementations; the operation always reports success to
// keep alerting decoupled from delivery-lifecycle correctness.
type Notifier interface {
	Notify(message string)
}
