package queries

import (
	"context"

	"glassgo/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves deliveries that have not yet
// reached a terminal status. Filters completed and delivered rows in SQL
// so terminal deliveries never leave the database.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for in-flight
// delivery queries. Requires a GORM database connection.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal deliveries.
// Results are sorted by delivery ID for consistent output.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_id,
			carrier_id,
			route_id,
			status,
			location_kind,
			location_text,
			location_lat,
			location_lng,
			updated_at,
			version
		FROM deliveries
		WHERE status NOT IN (?, ?)
		ORDER BY delivery_id
	`, delivery.Completed.String(), delivery.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveries(rows)
}
