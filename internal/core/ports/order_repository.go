package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its lines.
	// Returns *errs.ConflictError if the order number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and updated-at of an existing order.
	// Lines and total are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	// Returns *errs.ObjectNotFoundError if no order matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the surrounding
	// transaction ends. Must be called inside UnitOfWork.Begin.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextSequence atomically advances the counter of day and returns the new value.
	// The first call for a day returns 1.
	NextSequence(ctx context.Context, day time.Time) (int, error)

	// PruneSequences deletes counters of days strictly before the given day and
	// returns how many were removed.
	PruneSequences(ctx context.Context, before time.Time) (int64, error)
}
