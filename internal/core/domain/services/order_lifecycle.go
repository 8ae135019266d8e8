package services

import (
	"time"

	"flavorverse/internal/core/domain/model/order"
)

// Clock returns the current time. Production code uses UTC wall time.
type Clock func() time.Time

// OrderLifecycle is the domain service responsible for order placement and
// status transitions.
//
// Business rules:
//   - A placed order starts in order.Confirmed with a single order_placed step
//   - The delivery estimate is placement time plus order.EstimatedDeliveryWindow
//   - Any of the six statuses may follow any other; repeats are recorded again
//   - An unknown status leaves the order untouched
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle(nil)
//	o, err := lifecycle.Place(draft)
//	if err != nil {
//	    return err
//	}
//	err = lifecycle.Advance(o, order.Preparing, "")
type OrderLifecycle struct {
	now Clock
}

// NewOrderLifecycle creates an OrderLifecycle.
//
// Parameters:
//   - clock: source of timestamps; nil means time.Now in UTC
//
// Returns:
//   - OrderLifecycle ready to place and advance orders
func NewOrderLifecycle(clock Clock) OrderLifecycle {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return OrderLifecycle{now: clock}
}

// Place turns a validated draft into a new, not yet stored order.
func (l OrderLifecycle) Place(draft order.Draft) (*order.Order, error) {
	return order.NewOrder(draft, l.clock())
}

// Advance records a status change on o.
//
// Parameters:
//   - o: a constructed order
//   - status: requested status; rejected with *errs.StatusIsInvalidError when unknown
//   - message: optional note, "Order status updated to <status>" when empty
//
// Returns:
//   - error when o is not constructed or status is unknown; o is unchanged in that case
func (l OrderLifecycle) Advance(o *order.Order, status order.Status, message string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Advance(status, message, l.clock())
}

func (l OrderLifecycle) clock() time.Time {
	if l.now == nil {
		return time.Now().UTC()
	}
	return l.now()
}
