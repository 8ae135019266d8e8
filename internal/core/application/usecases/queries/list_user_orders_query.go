// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture; every query is scoped
// to a single owner.
package queries

import (
	"errors"

	"flavorverse/internal/pkg/errs"
	"flavorverse/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery retrieves every order placed by one owner.
//
// Example:
//
//	query, err := NewListUserOrdersQuery(userID)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
//	fmt.Printf("Found %d orders\n", len(orders))
type ListUserOrdersQuery struct {
	ownerID string

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery creates a query for the orders of ownerID.
func NewListUserOrdersQuery(ownerID string) (ListUserOrdersQuery, error) {
	if ownerID == "" {
		return ListUserOrdersQuery{}, errs.NewValueIsRequiredError("owner id")
	}
	return ListUserOrdersQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

// OwnerID returns the owner whose orders are listed.
func (q ListUserOrdersQuery) OwnerID() string {
	return q.ownerID
}
