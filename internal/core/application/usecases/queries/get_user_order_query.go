package queries

import (
	"errors"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/pkg/errs"
	"flavorverse/internal/pkg/guard"
)

var ErrGetUserOrderQueryIsNotConstructed = errors.New(
	"GetUserOrderQuery must be created via NewGetUserOrderQuery constructor",
)

// GetUserOrderQuery retrieves a single order on behalf of its owner.
type GetUserOrderQuery struct {
	orderID kernel.UUID
	ownerID string

	guard guard.ConstructorGuard
}

// NewGetUserOrderQuery creates the query. An orderID that does not parse as
// a UUID cannot name any order and yields *errs.ObjectNotFoundError.
func NewGetUserOrderQuery(orderID, ownerID string) (GetUserOrderQuery, error) {
	if ownerID == "" {
		return GetUserOrderQuery{}, errs.NewValueIsRequiredError("owner id")
	}

	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return GetUserOrderQuery{}, errs.NewObjectNotFoundErrorWithCause("order", orderID, err)
	}

	return GetUserOrderQuery{
		orderID: id,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrderQueryIsNotConstructed)
}

func (q GetUserOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetUserOrderQuery) OwnerID() string      { return q.ownerID }
