package queries

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
)

// MenuFilter narrows the menu listing. Nil fields are not applied.
type MenuFilter struct {
	Category    *catalog.Category
	IsAvailable *bool
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
}

// ListMenuItemsQuery lists menu items, newest first.
type ListMenuItemsQuery struct {
	filter MenuFilter

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(filter MenuFilter) (ListMenuItemsQuery, error) {
	var checks []error
	if filter.Category != nil {
		checks = append(checks, filter.Category.Validate())
	}
	if filter.MinPrice != nil && filter.MinPrice.IsNegative() {
		checks = append(checks, errs.NewValueIsInvalidErrorWithCause("minPrice", fmt.Errorf("%s is negative", filter.MinPrice)))
	}
	if filter.MaxPrice != nil && filter.MaxPrice.IsNegative() {
		checks = append(checks, errs.NewValueIsInvalidErrorWithCause("maxPrice", fmt.Errorf("%s is negative", filter.MaxPrice)))
	}
	if err := errors.Join(checks...); err != nil {
		return ListMenuItemsQuery{}, err
	}
	return ListMenuItemsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Filter() MenuFilter { return q.filter }
