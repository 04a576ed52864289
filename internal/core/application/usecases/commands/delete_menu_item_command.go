package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// DeleteMenuItemCommand removes an item from the menu. Existing order lines are kept.
type DeleteMenuItemCommand struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(itemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) ItemID() kernel.UUID { return c.itemID }
