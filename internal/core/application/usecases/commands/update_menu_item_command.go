package commands

import (
	"errors"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
)

// UpdateMenuItemCommand replaces every editable attribute of an item. Orders already
// placed keep the prices they were created with.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	details catalog.Details

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(itemID kernel.UUID, details catalog.Details) (UpdateMenuItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, err
	}
	return UpdateMenuItemCommand{
		itemID:  itemID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) ItemID() kernel.UUID      { return c.itemID }
func (c UpdateMenuItemCommand) Details() catalog.Details { return c.details }
