package order

import (
	"fmt"
	"time"

	"flavorverse/internal/pkg/errs"
)

// StepOrderPlaced labels the first entry of every tracking log. It is not a Status.
const StepOrderPlaced = "order_placed"

const orderPlacedMessage = "Order has been placed successfully"

// TrackingStep is one immutable entry of an order's tracking log.
type TrackingStep struct {
	step      string
	timestamp time.Time
	message   string
}

// NewTrackingStep validates and builds a tracking step. The step label and
// message must be non-empty and the timestamp set.
func NewTrackingStep(step string, timestamp time.Time, message string) (TrackingStep, error) {
	if err := validateStep(step, timestamp, message); err != nil {
		return TrackingStep{}, err
	}
	return TrackingStep{step: step, timestamp: timestamp, message: message}, nil
}

func validateStep(step string, timestamp time.Time, message string) error {
	switch {
	case step == "":
		return errs.NewValueIsRequiredError("tracking step")
	case timestamp.IsZero():
		return errs.NewValueIsRequiredErrorWithCause("tracking step timestamp", fmt.Errorf("step %s has no timestamp", step))
	case message == "":
		return errs.NewValueIsRequiredErrorWithCause("tracking step message", fmt.Errorf("step %s has no message", step))
	}
	return nil
}

// DefaultStatusMessage is the message recorded when a status update carries none.
func DefaultStatusMessage(status Status) string {
	return fmt.Sprintf("Order status updated to %s", status)
}

func (s TrackingStep) Step() string         { return s.step }
func (s TrackingStep) Timestamp() time.Time { return s.timestamp }
func (s TrackingStep) Message() string      { return s.message }
