package order

import (
	"errors"
	"fmt"
	"time"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/pkg/errs"
)

// EstimatedDeliveryWindow is added to the placement time to get the delivery estimate.
const EstimatedDeliveryWindow = 30 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when a placement carries no line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("line items")
)

// Order is the aggregate root of the ordering domain. Everything set at
// placement is immutable; only the status, the tracking log and updatedAt
// change afterwards, and only through Advance.
//
// Order follows these invariants:
//   - At least one valid line item and a positive total
//   - A non-empty owner, restaurant id and restaurant name
//   - A valid address and payment method
//   - The tracking log starts with exactly one order_placed step and grows by
//     one step per Advance
//
// The identifier is left unset by NewOrder; the repository assigns it when
// the order is first stored and hands back a restored aggregate.
type Order struct {
	id             kernel.UUID
	ownerID        string
	restaurantID   string
	restaurantName string
	lineItems      []LineItem
	total          kernel.Money
	address        DeliveryAddress
	payment        PaymentInfo

	status              Status
	placedAt            time.Time
	estimatedDeliveryAt time.Time
	trackingLog         []TrackingStep
	updatedAt           *time.Time

	isConstructed bool
}

// Snapshot is the full state of an order as read back from storage.
// It exists only to feed RestoreOrder.
type Snapshot struct {
	ID                  kernel.UUID
	Draft               Draft
	Status              Status
	PlacedAt            time.Time
	EstimatedDeliveryAt time.Time
	TrackingLog         []TrackingStep
	UpdatedAt           *time.Time
}

// NewOrder places a new order from a validated draft.
//
// Parameters:
//   - draft: the submission; items, total, address and payment are checked again
//   - placedAt: the placement time, also the timestamp of the first tracking step
//
// Returns:
//   - *Order in Confirmed status with one order_placed step
//   - error joining every violated rule
//
// Example:
//
//	o, err := order.NewOrder(draft, time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//	o.Status()            // order.Confirmed
//	len(o.TrackingLog())  // 1
func NewOrder(draft Draft, placedAt time.Time) (*Order, error) {
	o := &Order{
		status:        Confirmed,
		isConstructed: true,
	}

	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placed at")
	}

	if err := o.setPlacement(draft); err != nil {
		return nil, err
	}

	initial, err := NewTrackingStep(StepOrderPlaced, placedAt, orderPlacedMessage)
	if err != nil {
		return nil, err
	}

	o.placedAt = placedAt
	o.estimatedDeliveryAt = placedAt.Add(EstimatedDeliveryWindow)
	o.trackingLog = []TrackingStep{initial}
	return o, nil
}

// RestoreOrder rebuilds an order from storage. The same placement rules as
// NewOrder apply, plus a valid identifier, a known status and a non-empty
// tracking log.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{isConstructed: true}

	var logErr error
	if len(s.TrackingLog) == 0 {
		logErr = errs.NewValueIsRequiredError("tracking log")
	}

	if err := errors.Join(
		s.ID.Validate(),
		o.setPlacement(s.Draft),
		s.Status.Validate(),
		logErr,
	); err != nil {
		return nil, err
	}

	o.id = s.ID
	o.status = s.Status
	o.placedAt = s.PlacedAt
	o.estimatedDeliveryAt = s.EstimatedDeliveryAt
	o.trackingLog = append([]TrackingStep(nil), s.TrackingLog...)
	if s.UpdatedAt != nil {
		updatedAt := *s.UpdatedAt
		o.updatedAt = &updatedAt
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Advance moves the order to status and records the change.
//
// This method enforces the following rules:
//   - status must be one of the six known labels, otherwise the order is left untouched
//   - an empty message is replaced by DefaultStatusMessage(status)
//   - exactly one step is appended, even when status equals the current one
//
// Parameters:
//   - status: the requested status
//   - message: optional human-readable note for the tracking step
//   - at: the time of the change; becomes the step timestamp and UpdatedAt
func (o *Order) Advance(status Status, message string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if message == "" {
		message = DefaultStatusMessage(status)
	}

	step, err := NewTrackingStep(string(status), at, message)
	if err != nil {
		return err
	}

	o.trackingLog = append(o.trackingLog, step)
	o.status = status
	o.updatedAt = &at
	return nil
}

// IsOwnedBy reports whether ownerID placed the order.
func (o *Order) IsOwnedBy(ownerID string) bool {
	return ownerID != "" && o.ownerID == ownerID
}

// ID returns the identifier; zero until the order is stored.
func (o *Order) ID() kernel.UUID { return o.id }

func (o *Order) OwnerID() string        { return o.ownerID }
func (o *Order) RestaurantID() string   { return o.restaurantID }
func (o *Order) RestaurantName() string { return o.restaurantName }
func (o *Order) Total() kernel.Money    { return o.total }

// LineItems returns a copy of the purchased items in submission order.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

func (o *Order) DeliveryAddress() DeliveryAddress { return o.address }
func (o *Order) PaymentInfo() PaymentInfo         { return o.payment }

// Status returns the current status.
func (o *Order) Status() Status { return o.status }

func (o *Order) PlacedAt() time.Time            { return o.placedAt }
func (o *Order) EstimatedDeliveryAt() time.Time { return o.estimatedDeliveryAt }

// TrackingLog returns a copy of the tracking steps, oldest first.
func (o *Order) TrackingLog() []TrackingStep {
	return append([]TrackingStep(nil), o.trackingLog...)
}

// UpdatedAt returns the time of the last status change, or nil if the status
// never changed since placement.
func (o *Order) UpdatedAt() *time.Time {
	if o.updatedAt == nil {
		return nil
	}
	updatedAt := *o.updatedAt
	return &updatedAt
}

// setPlacement validates and copies every immutable placement field.
func (o *Order) setPlacement(d Draft) error {
	var errList []error

	if d.OwnerID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("owner id"))
	}
	if d.RestaurantID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("restaurant id"))
	}
	if d.RestaurantName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("restaurant name"))
	}
	if len(d.LineItems) == 0 {
		errList = append(errList, ErrOrderHasNoItems)
	}
	for i, item := range d.LineItems {
		if err := item.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("line item %d: %w", i, err))
		}
	}
	if err := d.Total.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("total", err))
	}
	errList = append(errList, d.Address.Validate(), d.Payment.Validate())

	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.ownerID = d.OwnerID
	o.restaurantID = d.RestaurantID
	o.restaurantName = d.RestaurantName
	o.lineItems = append([]LineItem(nil), d.LineItems...)
	o.total = d.Total
	o.address = d.Address
	o.payment = d.Payment
	return nil
}
