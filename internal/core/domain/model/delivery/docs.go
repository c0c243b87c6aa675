// Package delivery provides the domain model for the delivery execution
// subsystem: the Delivery aggregate root, its Status state machine and the
// domain events raised by state changes.
//
// Key business rules:
//   - A delivery starts in the in_progress status the moment it is created
//   - Any valid status may overwrite any non-terminal status; there is no
//     stricter transition table
//   - completed and delivered are terminal: further status-change requests
//     are silently ignored, returning the aggregate unchanged
//   - Every mutation refreshes the aggregate's timestamp, which is
//     non-decreasing per instance
//
// State changes raise domain events (StartedEvent, StatusChangedEvent,
// LocationUpdatedEvent) which the application layer publishes after a
// successful commit. Alerting and messaging subscribe to those events instead
// of being called inline, keeping lifecycle correctness independent of
// notification-channel availability.
package delivery
