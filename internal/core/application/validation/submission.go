package validation

import "github.com/shopspring/decimal"

// OrderSubmission is the body of a place-order request as decoded from JSON.
// Numeric fields are pointers so that an absent value and a zero value
// produce different messages. Optional strings are pointers for the same
// reason: they may be left out but not sent empty.
type OrderSubmission struct {
	RestaurantID   string             `json:"restaurant_id" validate:"required"`
	RestaurantName string             `json:"restaurant_name" validate:"required"`
	Items          []ItemSubmission   `json:"items" validate:"required,min=1,dive"`
	Total          *decimal.Decimal   `json:"total" validate:"required,positive_decimal"`
	Address        *AddressSubmission `json:"address" validate:"required"`
	Payment        *PaymentSubmission `json:"payment" validate:"required"`
	UserID         string             `json:"userId" validate:"required"`
}

type ItemSubmission struct {
	ID             string           `json:"id" validate:"required"`
	Name           string           `json:"name" validate:"required"`
	Price          *decimal.Decimal `json:"price" validate:"required,positive_decimal"`
	Quantity       *int             `json:"quantity" validate:"required,gt=0"`
	Image          *string          `json:"image,omitempty" validate:"omitempty,min=1,url"`
	RestaurantID   *string          `json:"restaurantId,omitempty" validate:"omitempty,min=1"`
	RestaurantName *string          `json:"restaurantName,omitempty" validate:"omitempty,min=1"`
}

type AddressSubmission struct {
	FullName             string `json:"fullName" validate:"required"`
	PhoneNumber          string `json:"phoneNumber" validate:"required"`
	AddressLine1         string `json:"addressLine1" validate:"required"`
	AddressLine2         string `json:"addressLine2,omitempty"`
	City                 string `json:"city" validate:"required"`
	State                string `json:"state" validate:"required"`
	ZipCode              string `json:"zipCode" validate:"required"`
	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
}

type PaymentSubmission struct {
	Method     string  `json:"method" validate:"required,oneof=card upi cod"`
	CardNumber *string `json:"cardNumber,omitempty" validate:"omitempty,min=1"`
	NameOnCard *string `json:"nameOnCard,omitempty" validate:"omitempty,min=1"`
	UpiID      *string `json:"upiId,omitempty" validate:"omitempty,min=1"`
}
