package queries

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrSearchMenuItemsQueryIsNotConstructed = errors.New(
		"SearchMenuItemsQuery must be created via NewSearchMenuItemsQuery constructor",
	)
)

// SearchMenuItemsQuery matches the term against item names and ingredients, ignoring case.
type SearchMenuItemsQuery struct {
	term string

	guard guard.ConstructorGuard
}

func NewSearchMenuItemsQuery(term string) (SearchMenuItemsQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchMenuItemsQuery{}, errs.NewValueIsRequiredError("search query")
	}
	return SearchMenuItemsQuery{term: term, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrSearchMenuItemsQueryIsNotConstructed)
}

func (q SearchMenuItemsQuery) Term() string { return q.term }
