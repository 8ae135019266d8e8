package commands_test

import (
	"errors"
	"testing"

	"flavorverse/internal/core/application/usecases/commands"
	"flavorverse/internal/core/domain/model/kernel"
	"flavorverse/internal/core/domain/model/order"
	"flavorverse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(validDraft())
	stored := storedOrder(kernel.NewUUID())

	repo := new(MockOrderRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID().IsZero() &&
			o.Status() == order.Confirmed &&
			o.PlacedAt().Equal(fixedNow) &&
			len(o.TrackingLog()) == 1
	})).Return(stored, nil).Once()

	h := commands.NewPlaceOrderCommandHandler(repo, fixedLifecycle())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, stored, result)
	repo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	repo := new(MockOrderRepository)
	h := commands.NewPlaceOrderCommandHandler(repo, fixedLifecycle())

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_InvalidDraft(t *testing.T) {
	d := validDraft()
	d.LineItems = nil
	cmd, _ := commands.NewPlaceOrderCommand(d)
	repo := new(MockOrderRepository)

	h := commands.NewPlaceOrderCommandHandler(repo, fixedLifecycle())
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CreateError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(validDraft())

	repo := new(MockOrderRepository)
	repo.On("Create", ctx, mock.AnythingOfType("*order.Order")).
		Return(nil, errs.NewPersistenceErrorWithCause("create order", errors.New("connection reset"))).Once()

	h := commands.NewPlaceOrderCommandHandler(repo, fixedLifecycle())
	result, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistence)
	assert.Nil(t, result)
	repo.AssertExpectations(t)
}
