package deliveryrepo

import (
	"context"
	"errors"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.DeliveryID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database using an optimistic
// concurrency check on the version column. When the delivery does not exist
// yet the update falls back to an insert, so callers may treat Update as an
// upsert. A version mismatch on an existing row returns VersionIsInvalidError.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("delivery_id = ? AND version = ?", dto.DeliveryID, dto.Version).
		Updates(map[string]any{
			"carrier_id":    dto.CarrierID,
			"route_id":      dto.RouteID,
			"status":        dto.Status,
			"location_kind": dto.LocationKind,
			"location_text": dto.LocationText,
			"location_lat":  dto.LocationLat,
			"location_lng":  dto.LocationLng,
			"updated_at":    dto.UpdatedAt,
			"version":       dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&DeliveryDTO{}).
			Where("delivery_id = ?", dto.DeliveryID).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return errs.NewVersionIsInvalidErrorWithCause(dto.DeliveryID)
		}

		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.DeliveryID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "delivery_id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every delivery ordered by ID.
func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Order("delivery_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllActive retrieves all deliveries that have not reached a terminal status.
func (r *GormDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{delivery.Completed.String(), delivery.Delivered.String()}).
		Order("delivery_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
