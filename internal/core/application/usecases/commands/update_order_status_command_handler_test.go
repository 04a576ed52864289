package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 2, kernel.MustMoney("100.00"))
	require.NoError(t, err)
	number, err := order.NewNumber(fixedNow, 1)
	require.NoError(t, err)
	created := fixedNow.Add(-time.Hour)
	o, err := order.RestoreOrder(kernel.NewUUID(), number, "Asha", 3, []order.Line{line},
		kernel.MustMoney("200.00"), status, created, created)
	require.NoError(t, err)
	return o
}

func newStatusHandler(
	t *testing.T,
	factory commands.OrderUoWFactory,
	policy order.TransitionPolicy,
) *commands.UpdateOrderStatusCommandHandler {
	t.Helper()
	h, err := commands.NewUpdateOrderStatusCommandHandler(factory, policy, kernel.FixedClock{At: fixedNow})
	require.NoError(t, err)
	return h
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(id, "Ready")
	require.NoError(t, err)
	assert.Equal(t, order.Ready, cmd.Status())
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewUpdateOrderStatusCommand(id, "Served")
	require.ErrorIs(t, err, order.ErrInvalidStatus)

	_, err = commands.NewUpdateOrderStatusCommand(kernel.UUID{}, "Ready")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	require.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(),
		commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}

func TestNewUpdateOrderStatusCommandHandler_RejectsUnknownPolicy(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommandHandler(new(MockOrderUoWFactory), "lenient", kernel.SystemClock{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), "Preparing")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	updated, err := newStatusHandler(t, factory, order.StrictPolicy).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())
	assert.Equal(t, fixedNow, updated.UpdatedAt())
	assert.Equal(t, "200.00", updated.Total().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_PermissiveAllowsDeliveredToCancelled(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Delivered)
	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), "Cancelled")

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	updated, err := newStatusHandler(t, factory, order.PermissivePolicy).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_StrictRejectsLeavingTerminal(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Delivered)
	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), "Cancelled")

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newStatusHandler(t, factory, order.StrictPolicy).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrIllegalTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, order.Delivered, o.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(id, "Ready")

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newStatusHandler(t, factory, order.PermissivePolicy).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), "Ready")

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(errors.New("update error")).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newStatusHandler(t, factory, order.PermissivePolicy).Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
