package queries

import (
	"errors"

	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetTopSellingItemsQueryIsNotConstructed = errors.New(
		"GetTopSellingItemsQuery must be created via NewGetTopSellingItemsQuery constructor",
	)
)

// GetTopSellingItemsQuery ranks catalog items by quantity sold in delivered orders.
type GetTopSellingItemsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetTopSellingItemsQuery uses services.DefaultTopSellingLimit when limit is 0.
func NewGetTopSellingItemsQuery(limit int) (GetTopSellingItemsQuery, error) {
	if limit == 0 {
		limit = services.DefaultTopSellingLimit
	}
	if err := services.NewSalesAggregator().ValidateLimit(limit); err != nil {
		return GetTopSellingItemsQuery{}, err
	}
	return GetTopSellingItemsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTopSellingItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetTopSellingItemsQueryIsNotConstructed)
}

func (q GetTopSellingItemsQuery) Limit() int { return q.limit }
