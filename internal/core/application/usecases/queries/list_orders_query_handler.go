package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersResponse is one page of orders plus the paging metadata.
type ListOrdersResponse struct {
	Orders []OrderView
	PageInfo
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle reads the count and the page in two statements and the lines of the page in a
// third. Orders created in the same instant are ordered by number, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	where, args := "", []any{}
	if status, ok := query.Status(); ok {
		where = "WHERE o.status = ?"
		args = append(args, status.String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders o `+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersResponse{}, errs.NewStoreUnavailableError("orders.count", err)
	}

	page := query.Page()
	pageArgs := append(append([]any{}, args...), page.Size(), page.Offset())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		`+where+`
		ORDER BY o.created_at DESC, o.order_number DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersResponse{}, errs.NewStoreUnavailableError("orders.list", err)
	}
	defer rows.Close()

	views := make([]OrderView, 0, page.Size())
	ids := make([]uuid.UUID, 0, page.Size())
	for rows.Next() {
		view, id, scanErr := scanOrder(rows)
		if scanErr != nil {
			return ListOrdersResponse{}, scanErr
		}
		views = append(views, view)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersResponse{}, errs.NewStoreUnavailableError("orders.list", err)
	}
	rows.Close()

	lines, err := loadLines(ctx, h.db, ids)
	if err != nil {
		return ListOrdersResponse{}, errs.NewStoreUnavailableError("order_lines.list", err)
	}
	for i, id := range ids {
		views[i].Lines = append(views[i].Lines, lines[id]...)
	}

	return ListOrdersResponse{Orders: views, PageInfo: newPageInfo(page, total)}, nil
}
