package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Validator turns an OrderSubmission into an order.Draft.
// It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator whose messages use JSON field names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("positive_decimal", isPositiveDecimal)

	return &Validator{validate: v}
}

// Validate checks s and converts it into a draft.
//
// Returns:
//   - order.Draft ready for placement
//   - *errs.ValidationFailedError holding one message per violated rule, in field order
func (v *Validator) Validate(s OrderSubmission) (order.Draft, error) {
	if err := v.validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return order.Draft{}, errs.NewValidationFailedErrorWithCause(err, lo.Map(fieldErrs, describe)...)
		}
		return order.Draft{}, errs.NewValidationFailedErrorWithCause(err, err.Error())
	}

	draft, err := toDraft(s)
	if err != nil {
		return order.Draft{}, errs.NewValidationFailedErrorWithCause(err, err.Error())
	}
	return draft, nil
}

// MalformedBody reports a request body that could not be decoded at all.
func MalformedBody(cause error) *errs.ValidationFailedError {
	return errs.NewValidationFailedErrorWithCause(cause, "request body is malformed: "+cause.Error())
}

func describe(fe validator.FieldError, _ int) string {
	path := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", path)
	case "gt", "positive_decimal":
		return fmt.Sprintf("%q must be a positive number", path)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q is not allowed to be empty", path)
		}
		return fmt.Sprintf("%q must contain at least %s items", path, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", path, fe.Param())
	case "url":
		return fmt.Sprintf("%q must be a valid uri", path)
	default:
		return fmt.Sprintf("%q is invalid", path)
	}
}

// isPositiveDecimal compares exactly; float conversion would turn tiny amounts into zero.
func isPositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}

// fieldPath drops the top-level struct name: "OrderSubmission.items[0].price" -> "items[0].price".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func toDraft(s OrderSubmission) (order.Draft, error) {
	total, err := kernel.NewMoney(*s.Total)
	if err != nil {
		return order.Draft{}, err
	}

	items := make([]order.LineItem, 0, len(s.Items))
	for _, it := range s.Items {
		price, err := kernel.NewMoney(*it.Price)
		if err != nil {
			return order.Draft{}, err
		}
		items = append(items, order.LineItem{
			ItemID:         it.ID,
			Name:           it.Name,
			UnitPrice:      price,
			Quantity:       *it.Quantity,
			ImageRef:       lo.FromPtr(it.Image),
			RestaurantID:   lo.FromPtr(it.RestaurantID),
			RestaurantName: lo.FromPtr(it.RestaurantName),
		})
	}

	return order.Draft{
		OwnerID:        s.UserID,
		RestaurantID:   s.RestaurantID,
		RestaurantName: s.RestaurantName,
		LineItems:      items,
		Total:          total,
		Address: order.DeliveryAddress{
			FullName:     s.Address.FullName,
			Phone:        s.Address.PhoneNumber,
			AddressLine1: s.Address.AddressLine1,
			AddressLine2: s.Address.AddressLine2,
			City:         s.Address.City,
			State:        s.Address.State,
			ZipCode:      s.Address.ZipCode,
			Instructions: s.Address.DeliveryInstructions,
		},
		Payment: order.PaymentInfo{
			Method:     order.PaymentMethod(s.Payment.Method),
			CardNumber: lo.FromPtr(s.Payment.CardNumber),
			NameOnCard: lo.FromPtr(s.Payment.NameOnCard),
			UpiID:      lo.FromPtr(s.Payment.UpiID),
		},
	}, nil
}
