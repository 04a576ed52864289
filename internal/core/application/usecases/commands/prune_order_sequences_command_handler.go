package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

type PruneOrderSequencesCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewPruneOrderSequencesCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
) (*PruneOrderSequencesCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	return &PruneOrderSequencesCommandHandler{uowFactory: uowFactory, clock: clock}, nil
}

// Handle returns the number of counters removed.
func (h *PruneOrderSequencesCommandHandler) Handle(ctx context.Context, cmd PruneOrderSequencesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := order.TruncateDay(h.clock.Now().Add(-cmd.Retention()))

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().PruneSequences(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
