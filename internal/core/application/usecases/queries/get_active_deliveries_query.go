package queries

import (
	"errors"

	"glassgo/internal/pkg/guard"
)

var (
	ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
		"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
	)
)

// GetActiveDeliveriesQuery retrieves deliveries still in flight.
// Excludes terminal deliveries (completed or delivered) to give
// monitoring and dispatch a view of the live workload.
//
// Example:
//
//	query := NewGetActiveDeliveriesQuery()
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d deliveries in flight\n", len(active))
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to retrieve in-flight deliveries.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveDeliveriesQueryIsNotConstructed if validation fails.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}
