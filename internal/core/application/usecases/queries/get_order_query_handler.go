package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, errs.NewStoreUnavailableError("orders.get", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, errs.NewStoreUnavailableError("orders.get", err)
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view, id, err := scanOrder(rows)
	if err != nil {
		return OrderView{}, err
	}
	rows.Close()

	lines, err := loadLines(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return OrderView{}, errs.NewStoreUnavailableError("order_lines.get", err)
	}
	view.Lines = append(view.Lines, lines[id]...)

	return view, nil
}
