package queries

import (
	"context"
	"strings"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	conds, args := make([]string, 0, 4), make([]any, 0, 4)
	if f.Category != nil {
		conds, args = append(conds, "category = ?"), append(args, f.Category.String())
	}
	if f.IsAvailable != nil {
		conds, args = append(conds, "is_available = ?"), append(args, *f.IsAvailable)
	}
	if f.MinPrice != nil {
		conds, args = append(conds, "price >= ?"), append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conds, args = append(conds, "price <= ?"), append(args, *f.MaxPrice)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+menuItemColumns+`
		FROM menu_items
		`+where+`
		ORDER BY created_at DESC, name ASC
	`, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("menu_items.list", err)
	}

	items, err := collectMenuItems(rows)
	if err != nil {
		return nil, errs.NewStoreUnavailableError("menu_items.list", err)
	}
	return items, nil
}
