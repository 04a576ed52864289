package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// MaxCreateOrderAttempts bounds the retries after an order number collision.
const MaxCreateOrderAttempts = 3

// ErrOrderSequenceExhausted is returned when a day already used every order number.
var ErrOrderSequenceExhausted = errors.New("all order numbers for the day are taken")

// CreateOrderCommandHandler builds and persists a new Pending order.
//
// Every requested line is priced exactly once through the PriceSnapshotResolver. Any
// unknown or unavailable item aborts the whole order before anything is written. The
// order number comes from the per-day counter; if the store still reports a duplicate
// number the attempt is rolled back and retried with the already resolved lines.
//
// Example:
//
//	handler, _ := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, catalog.ErrItemUnavailable) {
//	    // tell the guest
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) (*CreateOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	return &CreateOrderCommandHandler{uowFactory: uowFactory, clock: clock}, nil
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		lines []order.Line
		err   error
	)
	for range MaxCreateOrderAttempts {
		var created *order.Order
		created, lines, err = h.attempt(ctx, cmd, lines)
		if err == nil {
			return created, nil
		}
		if !isNumberCollision(err) {
			return nil, err
		}
	}
	return nil, err
}

// attempt runs one creation transaction. lines is nil on the first attempt and holds
// the resolved snapshots afterwards.
func (h *CreateOrderCommandHandler) attempt(
	ctx context.Context,
	cmd CreateOrderCommand,
	lines []order.Line,
) (*order.Order, []order.Line, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, lines, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if lines == nil {
		resolved, err := h.resolveLines(ctx, uow, cmd.Lines())
		if err != nil {
			return nil, nil, err
		}
		lines = resolved
	}

	now := h.clock.Now()
	orderRepo := uow.OrderRepository()

	seq, err := orderRepo.NextSequence(ctx, order.TruncateDay(now))
	if err != nil {
		return nil, lines, err
	}
	if seq > order.MaxSequence {
		return nil, lines, ErrOrderSequenceExhausted
	}

	number, err := order.NewNumber(now, seq)
	if err != nil {
		return nil, lines, err
	}

	created, err := order.NewOrder(cmd.OrderID(), number, cmd.CustomerName(), cmd.TableNumber(), lines, now)
	if err != nil {
		return nil, lines, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, lines, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, lines, err
	}

	return created, lines, nil
}

func (h *CreateOrderCommandHandler) resolveLines(
	ctx context.Context,
	uow UoW,
	requested []RequestedLine,
) ([]order.Line, error) {
	resolver, err := services.NewPriceSnapshotResolver(uow.CatalogRepository())
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(requested))
	for _, r := range requested {
		snapshot, resolveErr := resolver.Resolve(ctx, r.ItemID)
		if resolveErr != nil {
			return nil, resolveErr
		}

		line, lineErr := order.NewLine(snapshot.ItemID, r.Quantity, snapshot.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func isNumberCollision(err error) bool {
	return errors.Is(err, errs.ErrConflict)
}
