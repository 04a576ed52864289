package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = ?
	`, query.ItemID().Bytes()).Rows()
	if err != nil {
		return MenuItemView{}, errs.NewStoreUnavailableError("menu_items.get", err)
	}

	items, err := collectMenuItems(rows)
	if err != nil {
		return MenuItemView{}, errs.NewStoreUnavailableError("menu_items.get", err)
	}
	if len(items) == 0 {
		return MenuItemView{}, errs.NewObjectNotFoundError("menuItem", query.ItemID().String())
	}
	return items[0], nil
}
