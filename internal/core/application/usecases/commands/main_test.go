package commands_test

import (
	"context"
	"testing"
	"time"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if stored, ok := args.Get(0).(*order.Order); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByOwner(ctx context.Context, ownerID string) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetForOwner(ctx context.Context, id kernel.UUID, ownerID string) (*order.Order, error) {
	args := m.Called(ctx, id, ownerID)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatusForOwner(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 2, 3, 19, 0, 0, 0, time.UTC)

func fixedLifecycle() services.OrderLifecycle {
	return services.NewOrderLifecycle(func() time.Time { return fixedNow })
}

func validDraft() order.Draft {
	return order.Draft{
		OwnerID:        "u1",
		RestaurantID:   "r1",
		RestaurantName: "Bistro",
		LineItems: []order.LineItem{
			{ItemID: "i1", Name: "Soup", UnitPrice: kernel.MustNewMoney("9.50"), Quantity: 2},
		},
		Total: kernel.MustNewMoney("19.00"),
		Address: order.DeliveryAddress{
			FullName: "A", Phone: "555", AddressLine1: "1 St", City: "X", State: "Y", ZipCode: "0",
		},
		Payment: order.PaymentInfo{Method: order.PaymentUPI, UpiID: "a@upi"},
	}
}

// storedOrder returns validDraft as if it had been read back from the store.
func storedOrder(id kernel.UUID) *order.Order {
	placed, err := fixedLifecycle().Place(validDraft())
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(order.Snapshot{
		ID:                  id,
		Draft:               validDraft(),
		Status:              placed.Status(),
		PlacedAt:            placed.PlacedAt(),
		EstimatedDeliveryAt: placed.EstimatedDeliveryAt(),
		TrackingLog:         placed.TrackingLog(),
	})
	if err != nil {
		panic(err)
	}
	return o
}
