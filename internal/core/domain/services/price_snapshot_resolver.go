package services

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ItemLookup finds catalog items by identifier.
type ItemLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error)
}

// PriceSnapshot is what an order line needs from the catalog at creation time.
type PriceSnapshot struct {
	ItemID    kernel.UUID
	Name      string
	Category  catalog.Category
	Price     kernel.Money
	Available bool
}

// PriceSnapshotResolver reads the live price of a catalog item once, when an order
// line is built. It never writes to the catalog.
type PriceSnapshotResolver struct {
	items ItemLookup
}

func NewPriceSnapshotResolver(items ItemLookup) (*PriceSnapshotResolver, error) {
	if items == nil {
		return nil, errs.NewValueIsRequiredError("items")
	}
	return &PriceSnapshotResolver{items: items}, nil
}

// Resolve returns the current price of id.
//
// Errors:
//   - *catalog.ItemNotFoundError when no item matches
//   - *catalog.ItemUnavailableError when the item exists but is switched off
//   - any store error unchanged
func (r *PriceSnapshotResolver) Resolve(ctx context.Context, id kernel.UUID) (PriceSnapshot, error) {
	item, err := r.items.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return PriceSnapshot{}, catalog.NewItemNotFoundError(id)
		}
		return PriceSnapshot{}, err
	}

	if !item.IsAvailable() {
		return PriceSnapshot{}, catalog.NewItemUnavailableError(id, item.Name())
	}

	return PriceSnapshot{
		ItemID:    item.ID(),
		Name:      item.Name(),
		Category:  item.Category(),
		Price:     item.Price(),
		Available: true,
	}, nil
}
