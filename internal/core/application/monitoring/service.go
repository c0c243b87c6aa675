// Package monitoring implements location verification and impact alerting
// for the delivery lifecycle. The service reacts to delivery domain events
// and turns them into best-effort notifications: a local channel for every
// alert, and an SMS escalation for critical ones.
//
// Alerting is fire-and-forget end to end. A broken notification sink never
// fails the state change that triggered it.
package monitoring

import (
	"context"
	"fmt"
	"log/slog"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/core/ports"
)

// Severity classifies the operational impact of an alert.
type Severity string

const (
	// SeverityInfo marks routine lifecycle notifications.
	SeverityInfo Severity = "info"

	// SeverityWarning marks advisory conditions such as unverifiable locations.
	SeverityWarning Severity = "warning"

	// SeverityCritical marks disruptive conditions that escalate to SMS.
	SeverityCritical Severity = "critical"
)

// Service verifies delivery locations and raises impact alerts.
// Implements ports.EventHandler so it can be subscribed to the event bus.
type Service struct {
	notifier     ports.Notifier
	smsSender    ports.SMSSender
	defaultPhone string
	logger       *slog.Logger
}

// NewService creates a monitoring service.
// Critical alerts escalate via smsSender to defaultPhone.
func NewService(
	notifier ports.Notifier,
	smsSender ports.SMSSender,
	defaultPhone string,
	logger *slog.Logger,
) *Service {
	return &Service{
		notifier:     notifier,
		smsSender:    smsSender,
		defaultPhone: defaultPhone,
		logger:       logger,
	}
}

// VerifyLocation reports whether a reported location passes the presence and
// shape check. Unknown locations fail. Text locations pass when non-empty.
// Coordinates pass when both latitude and longitude are nonzero; a zero on
// either axis is treated as a missing reading rather than a valid position.
func (s *Service) VerifyLocation(location kernel.Location) bool {
	switch location.Kind() {
	case kernel.LocationText:
		return location.Text() != ""
	case kernel.LocationCoordinates:
		return location.Lat() != 0 && location.Lng() != 0
	default:
		return false
	}
}

// GenerateImpactAlert builds and dispatches an alert for the delivery's
// current status. The message always goes to the local notifier; critical
// severity additionally escalates to SMS. Returns the generated message.
// Never fails: sink errors are logged and swallowed.
func (s *Service) GenerateImpactAlert(d *delivery.Delivery, severity Severity) string {
	return s.dispatchAlert(d.ID(), d.Status(), severity)
}

// SendNotification pushes a message to the best-effort local channel.
func (s *Service) SendNotification(message string) {
	s.notifier.Notify(message)
}

// Handle reacts to a delivery domain event. Alerting rules:
//
//	started          -> info
//	status changed   -> critical when the new status is disruptive, else info
//	location updated -> warning when the location fails verification
//
// Always returns nil; the monitoring path never propagates failures.
func (s *Service) Handle(_ context.Context, event delivery.DomainEvent) error {
	switch e := event.(type) {
	case delivery.StartedEvent:
		s.dispatchAlert(e.DeliveryID(), e.Status, SeverityInfo)
	case delivery.StatusChangedEvent:
		severity := SeverityInfo
		if e.To.IsDisruptive() {
			severity = SeverityCritical
		}
		s.dispatchAlert(e.DeliveryID(), e.To, severity)
	case delivery.LocationUpdatedEvent:
		if !s.VerifyLocation(e.Location) {
			s.dispatchAlert(e.DeliveryID(), e.Status, SeverityWarning)
		}
	default:
		s.logger.Debug("monitoring: ignoring event", "event", event.EventName())
	}

	return nil
}

func (s *Service) dispatchAlert(id kernel.DeliveryID, status delivery.Status, severity Severity) string {
	message := fmt.Sprintf("[Alert:%s] Delivery %s status %s", severity, id, status)

	s.SendNotification(message)

	if severity == SeverityCritical {
		if accepted := s.smsSender.SendSMS(message, s.defaultPhone); !accepted {
			s.logger.Warn("monitoring: sms escalation rejected",
				"delivery_id", id.String(),
				"phone", s.defaultPhone)
		}
	}

	return message
}
