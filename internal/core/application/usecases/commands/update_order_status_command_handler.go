package commands

import (
	"context"

	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/core/ports"
	"flavorverse/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a status change to an owner's order.
// The read and the write are separate store calls; concurrent updates of the
// same order may overwrite each other's tracking steps.
type UpdateOrderStatusCommandHandler struct {
	orderRepo ports.OrderRepository
	lifecycle OrderLifecycle
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(
	orderRepo ports.OrderRepository,
	lifecycle OrderLifecycle,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepo: orderRepo,
		lifecycle: lifecycle,
	}
}

// Handle loads the order, records the new status with one tracking step and
// writes it back.
//
// Returns:
//   - the updated order
//   - *errs.ObjectNotFoundError when the order is missing or owned by someone else
//   - *errs.PersistenceError when the store fails
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orderRepo.GetForOwner(ctx, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(cmd.OwnerID()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if err = h.lifecycle.Advance(o, cmd.Status(), cmd.Message()); err != nil {
		return nil, err
	}

	if err = h.orderRepo.UpdateStatusForOwner(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}
