package queries

import (
	"time"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderLineView is an order line joined with the catalog entry it references.
// Name, Category and ImageURL are empty and ItemMissing is set when the item was deleted.
type OrderLineView struct {
	ItemID      kernel.UUID
	Name        string
	Category    catalog.Category
	ImageURL    string
	Quantity    int
	UnitPrice   kernel.Money
	ItemMissing bool
}

// Subtotal is unit price × quantity.
func (l OrderLineView) Subtotal() kernel.Money {
	return l.UnitPrice.Times(l.Quantity)
}

// OrderView is the display form of an order.
type OrderView struct {
	ID           kernel.UUID
	Number       string
	CustomerName string
	TableNumber  int
	Status       order.Status
	Total        kernel.Money
	Lines        []OrderLineView
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemCount is the sum of line quantities.
func (v OrderView) ItemCount() int {
	n := 0
	for _, l := range v.Lines {
		n += l.Quantity
	}
	return n
}

// MenuItemView is the display form of a catalog item.
type MenuItemView struct {
	ID              kernel.UUID
	Name            string
	Description     string
	Category        catalog.Category
	Price           kernel.Money
	Ingredients     []string
	Available       bool
	PreparationTime int
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
