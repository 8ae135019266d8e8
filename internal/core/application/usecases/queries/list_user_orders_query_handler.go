package queries

import (
	"context"

	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/core/ports"
)

// ListUserOrdersQueryHandler lists an owner's orders, most recent first.
type ListUserOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListUserOrdersQueryHandler creates a handler backed by orderRepo.
func NewListUserOrdersQueryHandler(orderRepo ports.OrderRepository) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns the owner's orders. An owner without orders gets an empty,
// non-nil slice.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.ListByOwner(ctx, query.OwnerID())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}

	return orders, nil
}
