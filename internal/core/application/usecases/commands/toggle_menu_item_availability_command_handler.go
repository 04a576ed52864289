package commands

import (
	"context"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

type ToggleMenuItemAvailabilityCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewToggleMenuItemAvailabilityCommandHandler(
	uowFactory CatalogUoWFactory,
	clock kernel.Clock,
) (*ToggleMenuItemAvailabilityCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	return &ToggleMenuItemAvailabilityCommandHandler{uowFactory: uowFactory, clock: clock}, nil
}

func (h *ToggleMenuItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleMenuItemAvailabilityCommand,
) (*catalog.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()

	item, err := repo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	item.ToggleAvailability(h.clock.Now())

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
