package queries

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery pages through orders, newest first, optionally filtered by status.
type ListOrdersQuery struct {
	status *order.Status
	page   Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status for "all statuses".
func NewListOrdersQuery(status string, pageNumber, pageSize int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	var statusErr error
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := order.ParseStatus(status)
		if err == nil {
			q.status = &parsed
		}
		statusErr = err
	}

	page, pageErr := NewPage(pageNumber, pageSize)
	if err := errors.Join(statusErr, pageErr); err != nil {
		return ListOrdersQuery{}, err
	}
	q.page = page
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, or false when every status is listed.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

func (q ListOrdersQuery) Page() Page { return q.page }
