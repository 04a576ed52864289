package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 19, 45, 0, 0, time.UTC)

func newMenuItem(t *testing.T, name, price string, available bool) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(kernel.NewUUID(), catalog.Details{
		Name:            name,
		Category:        catalog.MainCourse,
		Price:           decimal.RequireFromString(price),
		Available:       available,
		PreparationTime: 10,
	}, fixedNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return item
}

func newCreateHandler(t *testing.T, factory commands.UoWFactory) *commands.CreateOrderCommandHandler {
	t.Helper()
	h, err := commands.NewCreateOrderCommandHandler(factory, kernel.FixedClock{At: fixedNow})
	require.NoError(t, err)
	return h
}

func TestNewCreateOrderCommandHandler_RequiresDependencies(t *testing.T) {
	_, err := commands.NewCreateOrderCommandHandler(nil, kernel.SystemClock{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommandHandler(new(MockUoWFactory), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	itemA := newMenuItem(t, "A", "100.00", true)
	itemB := newMenuItem(t, "B", "50.00", true)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha", 4, []commands.RequestedLine{
		{ItemID: itemA.ID(), Quantity: 2},
		{ItemID: itemB.ID(), Quantity: 1},
	})
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("Get", ctx, itemA.ID()).Return(itemA, nil).Once(),
		catalogRepo.On("Get", ctx, itemB.ID()).Return(itemB, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("NextSequence", ctx, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)).Return(12, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	created, err := newCreateHandler(t, factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "ORD-20240315-0012", created.Number().String())
	assert.Equal(t, "250.00", created.Total().String())
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, fixedNow, created.CreatedAt())
	require.Len(t, created.Lines(), 2)
	assert.True(t, created.Lines()[0].ItemID().IsEqual(itemA.ID()))
	assert.Equal(t, "100.00", created.Lines()[0].UnitPrice().String())
	catalogRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableItemPersistsNothing(t *testing.T) {
	ctx := t.Context()
	itemA := newMenuItem(t, "A", "100.00", true)
	itemB := newMenuItem(t, "Kulfi", "60.00", false)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha", 4, []commands.RequestedLine{
		{ItemID: itemA.ID(), Quantity: 1},
		{ItemID: itemB.ID(), Quantity: 1},
	})

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("Get", ctx, itemA.ID()).Return(itemA, nil).Once(),
		catalogRepo.On("Get", ctx, itemB.ID()).Return(itemB, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	created, err := newCreateHandler(t, factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, catalog.ErrItemUnavailable)
	assert.Contains(t, err.Error(), "Kulfi")
	assert.Nil(t, created)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	missing := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha", 4, []commands.RequestedLine{
		{ItemID: missing, Quantity: 1},
	})

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("menuItem", missing)).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CatalogRepository").Return(catalogRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateHandler(t, factory).Handle(ctx, cmd)

	var notFound *catalog.ItemNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.True(t, notFound.ItemID.IsEqual(missing))
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RetriesNumberCollisionWithoutReResolving(t *testing.T) {
	ctx := t.Context()
	item := newMenuItem(t, "A", "100.00", true)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha", 4, []commands.RequestedLine{
		{ItemID: item.ID(), Quantity: 1},
	})

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", ctx, item.ID()).Return(item, nil).Once()

	firstRepo := new(MockOrderRepository)
	firstRepo.On("NextSequence", ctx, mock.Anything).Return(3, nil).Once()
	firstRepo.On("Add", ctx, mock.Anything).
		Return(errs.NewConflictError("order number", "ORD-20240315-0003")).Once()

	secondRepo := new(MockOrderRepository)
	secondRepo.On("NextSequence", ctx, mock.Anything).Return(4, nil).Once()
	secondRepo.On("Add", ctx, mock.Anything).Return(nil).Once()

	first := new(MockUoW)
	first.On("Begin", ctx).Return(nil).Once()
	first.On("CatalogRepository").Return(catalogRepo).Once()
	first.On("OrderRepository").Return(firstRepo).Once()
	first.On("Rollback", ctx).Return(nil).Once()

	second := new(MockUoW)
	second.On("Begin", ctx).Return(nil).Once()
	second.On("OrderRepository").Return(secondRepo).Once()
	second.On("Commit", ctx).Return(nil).Once()
	second.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(first).Once()
	factory.On("Create").Return(second).Once()

	created, err := newCreateHandler(t, factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "ORD-20240315-0004", created.Number().String())
	second.AssertNotCalled(t, "CatalogRepository")
	catalogRepo.AssertExpectations(t)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := t.Context()
	item := newMenuItem(t, "A", "100.00", true)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha", 4, []commands.RequestedLine{
		{ItemID: item.ID(), Quantity: 1},
	})

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", ctx, item.ID()).Return(item, nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("NextSequence", ctx, mock.Anything).Return(1, nil)
	orderRepo.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("order number", "dup"))

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("CatalogRepository").Return(catalogRepo).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Times(commands.MaxCreateOrderAttempts)

	_, err := newCreateHandler(t, factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	orderRepo.AssertNumberOfCalls(t, "Add", commands.MaxCreateOrderAttempts)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_SequenceExhausted(t *testing.T) {
	ctx := t.Context()
	item := newMenuItem(t, "A", "100.00", true)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha", 4, []commands.RequestedLine{
		{ItemID: item.ID(), Quantity: 1},
	})

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", ctx, item.ID()).Return(item, nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("NextSequence", ctx, mock.Anything).Return(order.MaxSequence+1, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CatalogRepository").Return(catalogRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateHandler(t, factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderSequenceExhausted)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha", 4, []commands.RequestedLine{
		{ItemID: kernel.NewUUID(), Quantity: 1},
	})

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errs.NewStoreUnavailableError("uow.begin", errors.New("connection refused"))).Once(),
	)

	_, err := newCreateHandler(t, factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)

	_, err := newCreateHandler(t, factory).Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	item := newMenuItem(t, "A", "100.00", true)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Asha", 4, []commands.RequestedLine{
		{ItemID: item.ID(), Quantity: 1},
	})

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("Get", ctx, item.ID()).Return(item, nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("NextSequence", ctx, mock.Anything).Return(1, nil).Once()
	orderRepo.On("Add", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CatalogRepository").Return(catalogRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(errs.NewStoreUnavailableError("commit", errors.New("conn reset"))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateHandler(t, factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	uow.AssertExpectations(t)
}
