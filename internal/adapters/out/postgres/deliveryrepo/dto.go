// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The status column is indexed because active-delivery queries and the monitoring
// job both filter on it. Version is the optimistic-concurrency token.
type DeliveryDTO struct {
	DeliveryID   string  `gorm:"type:varchar(64);primaryKey"`
	CarrierID    *string `gorm:"type:varchar(64)"`
	RouteID      *string `gorm:"type:varchar(64)"`
	Status       string  `gorm:"type:varchar(32);index"`
	LocationKind string  `gorm:"type:varchar(16)"`
	LocationText string
	LocationLat  float64
	LocationLng  float64
	UpdatedAt    time.Time
	Version      int
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	location := aggregate.Location()

	return DeliveryDTO{
		DeliveryID:   aggregate.ID().String(),
		CarrierID:    aggregate.CarrierID(),
		RouteID:      aggregate.RouteID(),
		Status:       aggregate.Status().String(),
		LocationKind: location.Kind().String(),
		LocationText: location.Text(),
		LocationLat:  location.Lat(),
		LocationLng:  location.Lng(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate using RestoreDelivery, which raises
// no domain events for rehydrated state.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.DeliveryIDFromString(dto.DeliveryID)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var location kernel.Location
	switch kernel.LocationKindFromString(dto.LocationKind) {
	case kernel.LocationText:
		location = kernel.NewTextLocation(dto.LocationText)
	case kernel.LocationCoordinates:
		location = kernel.NewCoordinates(dto.LocationLat, dto.LocationLng)
	default:
		location = kernel.UnknownLocation()
	}

	return delivery.RestoreDelivery(
		id,
		dto.CarrierID,
		dto.RouteID,
		status,
		location,
		dto.UpdatedAt,
		dto.Version,
	)
}
