package queries

import (
	"context"
	"database/sql"
	"time"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllDeliveriesQueryHandler retrieves the full delivery collection from
// the database. Bypasses the domain repository and reads the storage model
// directly for efficiency.
//
// Example:
//
//	handler := NewGetAllDeliveriesQueryHandler(db)
//	query := NewGetAllDeliveriesQuery()
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get deliveries: %v", err)
//	    return err
//	}
type GetAllDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveriesQueryHandler creates a handler for delivery list queries.
// Requires a GORM database connection for query execution.
func NewGetAllDeliveriesQueryHandler(db *gorm.DB) GetAllDeliveriesQueryHandler {
	return GetAllDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all deliveries.
// Results are sorted by delivery ID for consistent output.
func (h GetAllDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveriesQuery,
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
		ORDER BY delivery_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveries(rows)
}

func scanDeliveries(rows *sql.Rows) ([]DeliveryResponse, error) {
	deliveries := make([]DeliveryResponse, 0)

	for rows.Next() {
		var (
			id           string
			carrierID    *string
			routeID      *string
			status       string
			locationKind string
			locationText string
			lat, lng     float64
			updatedAt    time.Time
			version      int
		)

		err := rows.Scan(
			&id,
			&carrierID,
			&routeID,
			&status,
			&locationKind,
			&locationText,
			&lat,
			&lng,
			&updatedAt,
			&version,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.DeliveryIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}

		deliveryStatus, statusErr := delivery.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		deliveries = append(deliveries, DeliveryResponse{
			ID:        deliveryID,
			CarrierID: carrierID,
			RouteID:   routeID,
			Status:    deliveryStatus,
			Location:  restoreLocation(locationKind, locationText, lat, lng),
			UpdatedAt: updatedAt,
			Version:   version,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func restoreLocation(kind, text string, lat, lng float64) kernel.Location {
	switch kernel.LocationKindFromString(kind) {
	case kernel.LocationText:
		return kernel.NewTextLocation(text)
	case kernel.LocationCoordinates:
		return kernel.NewCoordinates(lat, lng)
	default:
		return kernel.UnknownLocation()
	}
}
