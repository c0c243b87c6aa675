// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/pkg/guard"
)

var (
	ErrGetAllDeliveriesQueryIsNotConstructed = errors.New(
		"GetAllDeliveriesQuery must be created via NewGetAllDeliveriesQuery constructor",
	)
)

// GetAllDeliveriesQuery retrieves every delivery known to the system.
// Returns identities, statuses, and last known locations for dashboards
// and operational reporting.
//
// Example:
//
//	query := NewGetAllDeliveriesQuery()
//	handler := NewGetAllDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve deliveries: %w", err)
//	}
//
//	for _, d := range deliveries {
//	    fmt.Printf("Delivery %s is %s at %s\n", d.ID, d.Status, d.Location)
//	}
type GetAllDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveriesQuery creates a query to retrieve all deliveries.
// This is a parameterless query that fetches the complete delivery list.
func NewGetAllDeliveriesQuery() GetAllDeliveriesQuery {
	return GetAllDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllDeliveriesQueryIsNotConstructed if validation fails.
func (q GetAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveriesQueryIsNotConstructed)
}

// DeliveryResponse represents delivery information in the read model.
// Carrier and route identifiers are optional and nil when the delivery
// was started without them.
type DeliveryResponse struct {
	ID        kernel.DeliveryID
	CarrierID *string
	RouteID   *string
	Status    delivery.Status
	Location  kernel.Location
	UpdatedAt time.Time
	Version   int
}
