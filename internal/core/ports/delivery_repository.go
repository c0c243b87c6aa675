// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// The store is indexed by delivery ID; every record carries a version counter
// so concurrent writers can detect lost updates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	// Fails if a delivery with the same ID already exists.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery using its version as an
	// optimistic-concurrency token. A delivery whose ID is absent from the
	// store is inserted instead (upsert); a present record with a stale
	// version fails with a version error.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its identifier.
	// Returns an ObjectNotFoundError when no record matches.
	Get(ctx context.Context, id kernel.DeliveryID) (*delivery.Delivery, error)

	// GetAll retrieves the full delivery collection.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	// GetAllActive retrieves deliveries that have not reached a terminal
	// status. Used by monitoring to find shipments still in motion.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)
}
