package orderrepo_test

import (
	"testing"
	"time"

	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseTime is truncated to microseconds, the precision Postgres keeps.
var baseTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func randomDraft(ownerID string) order.Draft {
	var items []order.LineItem
	total := decimal.Zero
	for i := 0; i < gofakeit.Number(1, 4); i++ {
		price := decimal.NewFromFloat(gofakeit.Price(1, 50)).Round(2)
		quantity := gofakeit.Number(1, 3)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
		items = append(items, order.LineItem{
			ItemID:    gofakeit.UUID(),
			Name:      gofakeit.Dessert(),
			UnitPrice: must(kernel.NewMoney(price)),
			Quantity:  quantity,
			ImageRef:  gofakeit.URL(),
		})
	}

	return order.Draft{
		OwnerID:        ownerID,
		RestaurantID:   gofakeit.UUID(),
		RestaurantName: gofakeit.Company(),
		LineItems:      items,
		Total:          must(kernel.NewMoney(total)),
		Address: order.DeliveryAddress{
			FullName:     gofakeit.Name(),
			Phone:        gofakeit.Phone(),
			AddressLine1: gofakeit.Street(),
			City:         gofakeit.City(),
			State:        gofakeit.State(),
			ZipCode:      gofakeit.Zip(),
			Instructions: "Leave at the door",
		},
		Payment: order.PaymentInfo{
			Method:     order.PaymentCard,
			CardNumber: gofakeit.CreditCardNumber(nil),
			NameOnCard: gofakeit.Name(),
		},
	}
}

func newOrder(t *testing.T, ownerID string, placedAt time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(randomDraft(ownerID), placedAt)
	require.NoError(t, err)
	return o
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// orderView exposes the comparable state of an order.
type orderView struct {
	OwnerID        string
	RestaurantID   string
	RestaurantName string
	LineItems      []order.LineItem
	Total          kernel.Money
	Address        order.DeliveryAddress
	Payment        order.PaymentInfo
	Status         order.Status
	PlacedAt       time.Time
	EstimatedAt    time.Time
	TrackingLog    []order.TrackingStep
	UpdatedAt      *time.Time
}

func viewOf(o *order.Order) orderView {
	return orderView{
		OwnerID:        o.OwnerID(),
		RestaurantID:   o.RestaurantID(),
		RestaurantName: o.RestaurantName(),
		LineItems:      o.LineItems(),
		Total:          o.Total(),
		Address:        o.DeliveryAddress(),
		Payment:        o.PaymentInfo(),
		Status:         o.Status(),
		PlacedAt:       o.PlacedAt(),
		EstimatedAt:    o.EstimatedDeliveryAt(),
		TrackingLog:    o.TrackingLog(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

func assertSameOrder(t *testing.T, expected, actual *order.Order) {
	t.Helper()

	opts := cmp.Options{
		cmp.Comparer(func(x, y kernel.Money) bool { return x.IsEqual(y) }),
		cmp.Comparer(func(x, y order.TrackingStep) bool {
			return x.Step() == y.Step() && x.Message() == y.Message() && x.Timestamp().Equal(y.Timestamp())
		}),
	}

	assert.Empty(t, cmp.Diff(viewOf(expected), viewOf(actual), opts))
}
