package orderrepo

import (
	"context"
	"errors"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/core/ports"
	"flavorverse/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Migrate creates or updates the orders table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{})
}

// Create saves a new order and returns it with its assigned identifier.
func (r *GormOrderRepository) Create(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, errs.NewPersistenceErrorWithCause("create order", err)
	}

	return toDomain(dto)
}

// ListByOwner retrieves the owner's orders, newest first.
func (r *GormOrderRepository) ListByOwner(ctx context.Context, ownerID string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("placed_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceErrorWithCause("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetForOwner retrieves an order by ID if ownerID placed it.
func (r *GormOrderRepository) GetForOwner(ctx context.Context, id kernel.UUID, ownerID string) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id.Raw(), ownerID).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewPersistenceErrorWithCause("get order", err)
	}

	return toDomain(dto)
}

// UpdateStatusForOwner writes the mutable columns of an existing order.
func (r *GormOrderRepository) UpdateStatusForOwner(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND user_id = ?", dto.ID, dto.UserID).
		Select("Status", "TrackingSteps", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceErrorWithCause("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}
