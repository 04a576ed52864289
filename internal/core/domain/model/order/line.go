package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Line is one catalog item reference within an order. The unit price is the
// snapshot taken when the order was created and never changes afterwards.
type Line struct {
	itemID    kernel.UUID
	quantity  int
	unitPrice kernel.Money
}

// NewLine validates the item reference and quantity.
func NewLine(itemID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	if err := errors.Join(itemID.Validate(), quantityErr); err != nil {
		return Line{}, err
	}
	return Line{itemID: itemID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l Line) ItemID() kernel.UUID     { return l.itemID }
func (l Line) Quantity() int           { return l.quantity }
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }

// Subtotal is unit price × quantity, unrounded.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
