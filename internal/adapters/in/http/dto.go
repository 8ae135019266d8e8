package http

import (
	"time"

	"flavorverse/internal/core/domain/model/order"

	"github.com/samber/lo"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error         string   `json:"error"`
	Details       any      `json:"details,omitempty"`
	ValidStatuses []string `json:"validStatuses,omitempty"`
}

type ListOrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
	Count   int             `json:"count"`
}

type OrderEnvelope struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
	Message string        `json:"message,omitempty"`
}

// UpdateStatusRequest is the PATCH body.
type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type OrderResponse struct {
	ID                string                 `json:"id"`
	UserID            string                 `json:"user_id"`
	RestaurantID      string                 `json:"restaurant_id"`
	RestaurantName    string                 `json:"restaurant_name"`
	Items             []ItemResponse         `json:"items"`
	Total             float64                `json:"total"`
	Address           AddressResponse        `json:"address"`
	Payment           PaymentResponse        `json:"payment"`
	Status            string                 `json:"status"`
	PlacedAt          time.Time              `json:"placed_at"`
	EstimatedDelivery time.Time              `json:"estimated_delivery"`
	TrackingSteps     []TrackingStepResponse `json:"tracking_steps"`
	UpdatedAt         *time.Time             `json:"updated_at,omitempty"`
}

type ItemResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Image          string  `json:"image,omitempty"`
	RestaurantID   string  `json:"restaurantId,omitempty"`
	RestaurantName string  `json:"restaurantName,omitempty"`
}

type AddressResponse struct {
	FullName             string `json:"fullName"`
	PhoneNumber          string `json:"phoneNumber"`
	AddressLine1         string `json:"addressLine1"`
	AddressLine2         string `json:"addressLine2,omitempty"`
	City                 string `json:"city"`
	State                string `json:"state"`
	ZipCode              string `json:"zipCode"`
	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
}

type PaymentResponse struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	NameOnCard string `json:"nameOnCard,omitempty"`
	UpiID      string `json:"upiId,omitempty"`
}

type TrackingStepResponse struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	address := o.DeliveryAddress()
	payment := o.PaymentInfo()

	return OrderResponse{
		ID:             o.ID().String(),
		UserID:         o.OwnerID(),
		RestaurantID:   o.RestaurantID(),
		RestaurantName: o.RestaurantName(),
		Items: lo.Map(o.LineItems(), func(it order.LineItem, _ int) ItemResponse {
			return ItemResponse{
				ID:             it.ItemID,
				Name:           it.Name,
				Price:          it.UnitPrice.Float64(),
				Quantity:       it.Quantity,
				Image:          it.ImageRef,
				RestaurantID:   it.RestaurantID,
				RestaurantName: it.RestaurantName,
			}
		}),
		Total: o.Total().Float64(),
		Address: AddressResponse{
			FullName:             address.FullName,
			PhoneNumber:          address.Phone,
			AddressLine1:         address.AddressLine1,
			AddressLine2:         address.AddressLine2,
			City:                 address.City,
			State:                address.State,
			ZipCode:              address.ZipCode,
			DeliveryInstructions: address.Instructions,
		},
		Payment: PaymentResponse{
			Method:     string(payment.Method),
			CardNumber: payment.CardNumber,
			NameOnCard: payment.NameOnCard,
			UpiID:      payment.UpiID,
		},
		Status:            o.Status().String(),
		PlacedAt:          o.PlacedAt(),
		EstimatedDelivery: o.EstimatedDeliveryAt(),
		TrackingSteps: lo.Map(o.TrackingLog(), func(s order.TrackingStep, _ int) TrackingStepResponse {
			return TrackingStepResponse{Step: s.Step(), Timestamp: s.Timestamp(), Message: s.Message()}
		}),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	return lo.Map(orders, func(o *order.Order, _ int) OrderResponse { return toOrderResponse(o) })
}
