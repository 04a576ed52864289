package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order row and its lines in one statement batch.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicate(err) {
			return errs.NewConflictErrorWithCause("orderNumber", dto.OrderNumber, err)
		}
		return errs.NewStoreUnavailableError("orders.add", err)
	}

	return nil
}

// Update writes status and updated_at only.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return errs.NewStoreUnavailableError("orders.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, r.db.WithContext(ctx))
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE. Lines are read without
// a lock; they never change after creation.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}))
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, query *gorm.DB) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreUnavailableError("orders.get", err)
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&dto.Lines).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("order_lines.get", err)
	}

	return toDomain(dto)
}

// NextSequence advances the counter of day with a single upsert. Concurrent callers
// serialize on the counter row, so each receives a distinct value.
func (r *GormOrderRepository) NextSequence(ctx context.Context, day time.Time) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_sequences (day, value)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET value = order_sequences.value + 1
		RETURNING value
	`, order.TruncateDay(day).Format(time.DateOnly)).Scan(&value).Error
	if err != nil {
		return 0, errs.NewStoreUnavailableError("order_sequences.next", err)
	}
	return value, nil
}

// PruneSequences deletes counters of days before the given day.
func (r *GormOrderRepository) PruneSequences(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("day < ?", order.TruncateDay(before).Format(time.DateOnly)).
		Delete(&OrderSequenceDTO{})
	if result.Error != nil {
		return 0, errs.NewStoreUnavailableError("order_sequences.prune", result.Error)
	}
	return result.RowsAffected, nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
