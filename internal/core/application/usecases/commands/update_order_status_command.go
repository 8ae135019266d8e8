package commands

import (
	"errors"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/pkg/errs"
	"flavorverse/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a status change requested by an order's owner.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(c.Param("id"), userID, "on_the_way", "")
//	var invalid *errs.StatusIsInvalidError
//	if errors.As(err, &invalid) {
//	    // invalid.Allowed lists the accepted labels
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID string
	status  order.Status
	message string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status change command.
//
// The status label is checked here, before any store access. An order id
// that is not a UUID cannot match any order and is reported as
// *errs.ObjectNotFoundError. All violations are joined.
func NewUpdateOrderStatusCommand(orderID, ownerID, status, message string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setStatus(status),
		cmd.setOrderID(orderID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) OwnerID() string      { return c.ownerID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// Message returns the optional tracking note; empty means the default message.
func (c UpdateOrderStatusCommand) Message() string { return c.message }

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return errs.NewObjectNotFoundErrorWithCause("order", orderID, err)
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}

	c.ownerID = ownerID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("status")
	}

	status, err := order.ParseStatus(label)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
