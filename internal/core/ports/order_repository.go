// Package ports defines the persistence contract used by the order use cases.
// Adapters implement it; command and query handlers depend only on it.
package ports

import (
	"context"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read and update is scoped by owner: an order that exists but belongs
// to someone else is reported exactly like a missing one.
//
// Failures of the underlying store are returned as *errs.PersistenceError;
// missing rows as *errs.ObjectNotFoundError.
type OrderRepository interface {
	// Create assigns an identifier to a new order, persists it and returns
	// the stored aggregate. The argument itself is not modified.
	Create(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// ListByOwner returns the owner's orders, most recently placed first.
	// An owner without orders gets an empty slice and no error.
	ListByOwner(ctx context.Context, ownerID string) ([]*order.Order, error)

	// GetForOwner retrieves a single order by id, provided ownerID placed it.
	GetForOwner(ctx context.Context, id kernel.UUID, ownerID string) (*order.Order, error)

	// UpdateStatusForOwner writes the status, tracking log and updated time
	// of aggregate. Placement fields are never rewritten.
	//
	// Example:
	//   if err := lifecycle.Advance(o, order.Preparing, ""); err != nil {
	//       return nil, err
	//   }
	//   if err := repo.UpdateStatusForOwner(ctx, o); err != nil {
	//       return nil, fmt.Errorf("failed to save order: %w", err)
	//   }
	UpdateStatusForOwner(ctx context.Context, aggregate *order.Order) error
}
