// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command follows the same steps: constructor validation, domain
// operation, owner-scoped persistence.
package commands

import "flavorverse/internal/core/domain/model/order"

// OrderLifecycle is the domain behaviour command handlers rely on.
// services.OrderLifecycle implements it.
type OrderLifecycle interface {
	Place(draft order.Draft) (*order.Order, error)
	Advance(o *order.Order, status order.Status, message string) error
}
