package catalog

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrItemNotFound marks a catalog lookup that matched no item.
	ErrItemNotFound = errors.New("menu item not found")

	// ErrItemUnavailable marks an item that exists but cannot currently be ordered.
	ErrItemUnavailable = errors.New("menu item is not available")
)

// ItemNotFoundError names the identifier that did not resolve. It matches both
// ErrItemNotFound and errs.ErrObjectNotFound.
type ItemNotFoundError struct {
	ItemID kernel.UUID
}

func NewItemNotFoundError(id kernel.UUID) *ItemNotFoundError {
	return &ItemNotFoundError{ItemID: id}
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("Menu item with ID %s not found", e.ItemID)
}

func (e *ItemNotFoundError) Unwrap() []error {
	return []error{ErrItemNotFound, errs.ErrObjectNotFound}
}

// ItemUnavailableError names the item whose availability flag is off.
type ItemUnavailableError struct {
	ItemID kernel.UUID
	Name   string
}

func NewItemUnavailableError(id kernel.UUID, name string) *ItemUnavailableError {
	return &ItemUnavailableError{ItemID: id, Name: name}
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("%s is currently not available (id %s)", e.Name, e.ItemID)
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrItemUnavailable
}
