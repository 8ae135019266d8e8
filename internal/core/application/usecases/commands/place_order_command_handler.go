package commands

import (
	"context"

	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/core/ports"
)

// PlaceOrderCommandHandler places an order and stores it.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(orderRepo, services.NewOrderLifecycle(nil))
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	placed.Status() // order.Confirmed
type PlaceOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	lifecycle OrderLifecycle
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(orderRepo ports.OrderRepository, lifecycle OrderLifecycle) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orderRepo: orderRepo,
		lifecycle: lifecycle,
	}
}

// Handle places the order in confirmed status and persists it.
// Returns the stored order with its assigned identifier.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := h.lifecycle.Place(cmd.Draft())
	if err != nil {
		return nil, err
	}

	return h.orderRepo.Create(ctx, placed)
}
