package order

import (
	"flavorverse/internal/pkg/errs"

	"github.com/samber/lo"
)

// Status is the lifecycle state of an order, stored and transmitted as its label.
//
//	pending ─┐
//	         ├─> confirmed ─> preparing ─> on_the_way ─> delivered
//	         │                                  (any) ─> cancelled
//
// The arrows show the expected flow; Order.Advance accepts any known label
// regardless of the current state.
type Status string

// remember to add new statuses to the statuses slice
const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Preparing Status = "preparing"
	OnTheWay  Status = "on_the_way"
	Delivered Status = "delivered"
	Cancelled Status = "cancelled"
)

// statuses keeps declaration order; it is what clients see when a label is rejected.
var statuses = []Status{Pending, Confirmed, Preparing, OnTheWay, Delivered, Cancelled}

// Statuses returns every known status in declaration order.
func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

// StatusLabels returns the string form of Statuses.
func StatusLabels() []string {
	return lo.Map(statuses, func(s Status, _ int) string { return string(s) })
}

// ParseStatus converts a label into a Status.
//
// Returns:
//   - the Status when label is one of the six known labels
//   - *errs.StatusIsInvalidError listing the allowed labels otherwise
//
// Example:
//
//	status, err := order.ParseStatus("on_the_way")
//	if err != nil {
//	    var invalid *errs.StatusIsInvalidError
//	    errors.As(err, &invalid) // invalid.Allowed holds the valid set
//	}
func ParseStatus(label string) (Status, error) {
	status := Status(label)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether s is a known label.
func (s Status) Validate() error {
	if !lo.Contains(statuses, s) {
		return errs.NewStatusIsInvalidError(string(s), StatusLabels())
	}
	return nil
}

// IsTerminal reports whether no further transition is expected in normal operation.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// String returns the label.
func (s Status) String() string {
	return string(s)
}
