package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrToggleMenuItemAvailabilityCommandIsNotConstructed = errors.New(
		"ToggleMenuItemAvailabilityCommand must be created via NewToggleMenuItemAvailabilityCommand constructor",
	)
)

// ToggleMenuItemAvailabilityCommand flips whether an item can be ordered.
type ToggleMenuItemAvailabilityCommand struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleMenuItemAvailabilityCommand(itemID kernel.UUID) (ToggleMenuItemAvailabilityCommand, error) {
	if err := itemID.Validate(); err != nil {
		return ToggleMenuItemAvailabilityCommand{}, err
	}
	return ToggleMenuItemAvailabilityCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleMenuItemAvailabilityCommandIsNotConstructed)
}

func (c ToggleMenuItemAvailabilityCommand) ItemID() kernel.UUID { return c.itemID }
