// Package orderrepo provides the GORM persistence adapter for the order aggregate:
// the table layout, mapping functions and the owner-scoped repository.
package orderrepo

import (
	"time"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO represents one row of the orders table. Nested values are kept
// as JSON documents; the composite index serves the owner listing.
type OrderDTO struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID            string            `gorm:"not null;index:idx_orders_user_placed,priority:1"`
	RestaurantID      string            `gorm:"not null"`
	RestaurantName    string            `gorm:"not null"`
	Items             []LineItemDTO     `gorm:"type:jsonb;serializer:json;not null"`
	Total             decimal.Decimal   `gorm:"type:numeric;not null"`
	Address           AddressDTO        `gorm:"type:jsonb;serializer:json;not null"`
	Payment           PaymentDTO        `gorm:"type:jsonb;serializer:json;not null"`
	Status            string            `gorm:"not null"`
	PlacedAt          time.Time         `gorm:"not null;index:idx_orders_user_placed,priority:2,sort:desc"`
	EstimatedDelivery time.Time         `gorm:"not null"`
	TrackingSteps     []TrackingStepDTO `gorm:"type:jsonb;serializer:json;not null"`
	UpdatedAt         *time.Time        `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// BeforeCreate assigns the identifier of a new row.
func (o *OrderDTO) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type LineItemDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Image          string          `json:"image,omitempty"`
	RestaurantID   string          `json:"restaurantId,omitempty"`
	RestaurantName string          `json:"restaurantName,omitempty"`
}

type AddressDTO struct {
	FullName             string `json:"fullName"`
	PhoneNumber          string `json:"phoneNumber"`
	AddressLine1         string `json:"addressLine1"`
	AddressLine2         string `json:"addressLine2,omitempty"`
	City                 string `json:"city"`
	State                string `json:"state"`
	ZipCode              string `json:"zipCode"`
	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
}

type PaymentDTO struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	NameOnCard string `json:"nameOnCard,omitempty"`
	UpiID      string `json:"upiId,omitempty"`
}

type TrackingStepDTO struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// fromDomain converts an order aggregate to its row. A new order has a zero
// identifier, which maps to uuid.Nil so BeforeCreate can fill it in.
func fromDomain(o *order.Order) OrderDTO {
	address := o.DeliveryAddress()
	payment := o.PaymentInfo()

	return OrderDTO{
		ID:             o.ID().Raw(),
		UserID:         o.OwnerID(),
		RestaurantID:   o.RestaurantID(),
		RestaurantName: o.RestaurantName(),
		Items: lo.Map(o.LineItems(), func(it order.LineItem, _ int) LineItemDTO {
			return LineItemDTO{
				ID:             it.ItemID,
				Name:           it.Name,
				Price:          it.UnitPrice.Amount(),
				Quantity:       it.Quantity,
				Image:          it.ImageRef,
				RestaurantID:   it.RestaurantID,
				RestaurantName: it.RestaurantName,
			}
		}),
		Total: o.Total().Amount(),
		Address: AddressDTO{
			FullName:             address.FullName,
			PhoneNumber:          address.Phone,
			AddressLine1:         address.AddressLine1,
			AddressLine2:         address.AddressLine2,
			City:                 address.City,
			State:                address.State,
			ZipCode:              address.ZipCode,
			DeliveryInstructions: address.Instructions,
		},
		Payment: PaymentDTO{
			Method:     string(payment.Method),
			CardNumber: payment.CardNumber,
			NameOnCard: payment.NameOnCard,
			UpiID:      payment.UpiID,
		},
		Status:            o.Status().String(),
		PlacedAt:          o.PlacedAt().UTC(),
		EstimatedDelivery: o.EstimatedDeliveryAt().UTC(),
		TrackingSteps:     trackingFromDomain(o.TrackingLog()),
		UpdatedAt:         utcPtr(o.UpdatedAt()),
	}
}

func trackingFromDomain(log []order.TrackingStep) []TrackingStepDTO {
	return lo.Map(log, func(s order.TrackingStep, _ int) TrackingStepDTO {
		return TrackingStepDTO{Step: s.Step(), Timestamp: s.Timestamp().UTC(), Message: s.Message()}
	})
}

// toDomain converts a row back to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		price, priceErr := kernel.NewMoney(it.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		items = append(items, order.LineItem{
			ItemID:         it.ID,
			Name:           it.Name,
			UnitPrice:      price,
			Quantity:       it.Quantity,
			ImageRef:       it.Image,
			RestaurantID:   it.RestaurantID,
			RestaurantName: it.RestaurantName,
		})
	}

	steps := make([]order.TrackingStep, 0, len(dto.TrackingSteps))
	for _, s := range dto.TrackingSteps {
		step, stepErr := order.NewTrackingStep(s.Step, s.Timestamp.UTC(), s.Message)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	return order.RestoreOrder(order.Snapshot{
		ID: id,
		Draft: order.Draft{
			OwnerID:        dto.UserID,
			RestaurantID:   dto.RestaurantID,
			RestaurantName: dto.RestaurantName,
			LineItems:      items,
			Total:          total,
			Address: order.DeliveryAddress{
				FullName:     dto.Address.FullName,
				Phone:        dto.Address.PhoneNumber,
				AddressLine1: dto.Address.AddressLine1,
				AddressLine2: dto.Address.AddressLine2,
				City:         dto.Address.City,
				State:        dto.Address.State,
				ZipCode:      dto.Address.ZipCode,
				Instructions: dto.Address.DeliveryInstructions,
			},
			Payment: order.PaymentInfo{
				Method:     order.PaymentMethod(dto.Payment.Method),
				CardNumber: dto.Payment.CardNumber,
				NameOnCard: dto.Payment.NameOnCard,
				UpiID:      dto.Payment.UpiID,
			},
		},
		Status:              order.Status(dto.Status),
		PlacedAt:            dto.PlacedAt.UTC(),
		EstimatedDeliveryAt: dto.EstimatedDelivery.UTC(),
		TrackingLog:         steps,
		UpdatedAt:           utcPtr(dto.UpdatedAt),
	})
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return lo.ToPtr(t.UTC())
}
