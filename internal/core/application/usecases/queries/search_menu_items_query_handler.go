package queries

import (
	"context"
	"strings"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type SearchMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewSearchMenuItemsQueryHandler(db *gorm.DB) SearchMenuItemsQueryHandler {
	return SearchMenuItemsQueryHandler{db: db}
}

// Handle lists name matches before ingredient-only matches, each group by name.
func (h SearchMenuItemsQueryHandler) Handle(ctx context.Context, query SearchMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + escapeLike(query.Term()) + "%"

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE name ILIKE @pattern
		   OR EXISTS (SELECT 1 FROM unnest(ingredients) AS ing WHERE ing ILIKE @pattern)
		ORDER BY (name ILIKE @pattern) DESC, name ASC
	`, map[string]any{"pattern": pattern}).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("menu_items.search", err)
	}

	items, err := collectMenuItems(rows)
	if err != nil {
		return nil, errs.NewStoreUnavailableError("menu_items.search", err)
	}
	return items, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
