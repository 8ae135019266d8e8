package queries

import (
	"context"

	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/core/ports"
	"flavorverse/internal/pkg/errs"
)

// GetUserOrderQueryHandler fetches one order for its owner.
//
// Example:
//
//	query, err := NewGetUserOrderQuery(c.Param("id"), userID)
//	if err != nil {
//	    return err // *errs.ObjectNotFoundError for a malformed id
//	}
//	o, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // missing, or placed by someone else
//	}
type GetUserOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetUserOrderQueryHandler creates a handler backed by orderRepo.
func NewGetUserOrderQueryHandler(orderRepo ports.OrderRepository) GetUserOrderQueryHandler {
	return GetUserOrderQueryHandler{orderRepo: orderRepo}
}

// Handle returns the order or *errs.ObjectNotFoundError.
func (h GetUserOrderQueryHandler) Handle(ctx context.Context, query GetUserOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orderRepo.GetForOwner(ctx, query.OrderID(), query.OwnerID())
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(query.OwnerID()) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	return o, nil
}
