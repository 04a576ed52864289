// Package ports defines the persistence contracts of the ordering core.
// Adapters in internal/adapters/out implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for menu items.
type CatalogRepository interface {
	// Add persists a new item.
	Add(ctx context.Context, item *catalog.Item) error

	// Update persists changes to an existing item.
	// Returns *errs.ObjectNotFoundError if the item does not exist.
	Update(ctx context.Context, item *catalog.Item) error

	// Delete removes the item. Orders referencing it keep their frozen lines.
	// Returns *errs.ObjectNotFoundError if the item does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an item by identifier.
	// Returns *errs.ObjectNotFoundError if no item matches.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error)
}
