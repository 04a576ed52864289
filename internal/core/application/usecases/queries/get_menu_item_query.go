package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

type GetMenuItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(itemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) ItemID() kernel.UUID { return q.itemID }
