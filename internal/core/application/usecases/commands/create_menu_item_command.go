package commands

import (
	"errors"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
)

// CreateMenuItemCommand adds an item to the menu. Field rules are enforced by catalog.NewItem.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	details catalog.Details

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(itemID kernel.UUID, details catalog.Details) (CreateMenuItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return CreateMenuItemCommand{}, err
	}
	return CreateMenuItemCommand{
		itemID:  itemID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) ItemID() kernel.UUID      { return c.itemID }
func (c CreateMenuItemCommand) Details() catalog.Details { return c.details }
