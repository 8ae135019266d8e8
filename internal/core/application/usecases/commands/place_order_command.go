package commands

import (
	"errors"

	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/pkg/errs"
	"flavorverse/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new order from a
// submission that already passed schema validation.
//
// Example:
//
//	draft, err := validator.Validate(submission)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewPlaceOrderCommand(draft)
//	if err != nil {
//	    return err
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	draft order.Draft

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place draft for its owner.
// The draft must name an owner; the remaining rules are enforced by the
// order aggregate when the command is handled.
func NewPlaceOrderCommand(draft order.Draft) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDraft(draft); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Draft returns the submission to place.
func (c PlaceOrderCommand) Draft() order.Draft {
	return c.draft
}

func (c *PlaceOrderCommand) setDraft(draft order.Draft) error {
	if draft.OwnerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}

	c.draft = draft
	return nil
}
