package order

import (
	"errors"
	"fmt"
	"math"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay. Only the method is
// checked; card and UPI identifiers are stored as given.
type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentUPI            PaymentMethod = "upi"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

// PaymentMethods returns the accepted methods.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCard, PaymentUPI, PaymentCashOnDelivery}
}

// Validate reports whether m is an accepted method.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCard, PaymentUPI, PaymentCashOnDelivery:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not one of card, upi, cod", string(m)))
}

// MinQuantity is the smallest quantity a line item may carry.
const MinQuantity = 1

// LineItem is one purchased menu item. The restaurant fields are optional
// copies of the order-level ones that the client may attach per item.
type LineItem struct {
	ItemID         string
	Name           string
	UnitPrice      kernel.Money
	Quantity       int
	ImageRef       string
	RestaurantID   string
	RestaurantName string
}

// Validate checks item identity, price and quantity.
func (i LineItem) Validate() error {
	var errList []error
	if i.ItemID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item id"))
	}
	if i.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item name"))
	}
	if err := i.UnitPrice.Validate(); err != nil {
		errList = append(errList, err)
	}
	if i.Quantity < MinQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", i.Quantity, MinQuantity, math.MaxInt))
	}
	return errors.Join(errList...)
}

// DeliveryAddress is where the order goes. AddressLine2 and Instructions may be empty.
type DeliveryAddress struct {
	FullName     string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Instructions string
}

// Validate checks that every mandatory field is present.
func (a DeliveryAddress) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"full name", a.FullName},
		{"phone", a.Phone},
		{"address line 1", a.AddressLine1},
		{"city", a.City},
		{"state", a.State},
		{"zip code", a.ZipCode},
	}

	var errList []error
	for _, field := range required {
		if field.value == "" {
			errList = append(errList, errs.NewValueIsRequiredError(field.name))
		}
	}
	return errors.Join(errList...)
}

// PaymentInfo is informational payment metadata.
type PaymentInfo struct {
	Method     PaymentMethod
	CardNumber string
	NameOnCard string
	UpiID      string
}

// Validate checks the method only.
func (p PaymentInfo) Validate() error {
	return p.Method.Validate()
}

// Draft is a validated submission that has not been placed yet.
type Draft struct {
	OwnerID        string
	RestaurantID   string
	RestaurantName string
	LineItems      []LineItem
	Total          kernel.Money
	Address        DeliveryAddress
	Payment        PaymentInfo
}
