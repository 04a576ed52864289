package queries

import (
	"database/sql"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const menuItemColumns = `
	id,
	name,
	description,
	category,
	price,
	ingredients,
	is_available,
	preparation_time,
	image_url,
	created_at,
	updated_at`

func scanMenuItem(rows *sql.Rows) (MenuItemView, error) {
	var (
		v           MenuItemView
		id          uuid.UUID
		category    string
		price       decimal.Decimal
		ingredients pq.StringArray
	)
	if err := rows.Scan(
		&id,
		&v.Name,
		&v.Description,
		&category,
		&price,
		&ingredients,
		&v.Available,
		&v.PreparationTime,
		&v.ImageURL,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return MenuItemView{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return MenuItemView{}, err
	}
	v.ID = itemID
	v.Category = catalog.Category(category)
	if v.Price, err = kernel.NewMoney(price); err != nil {
		return MenuItemView{}, err
	}
	v.Ingredients = append(make([]string, 0, len(ingredients)), ingredients...)
	return v, nil
}

func collectMenuItems(rows *sql.Rows) ([]MenuItemView, error) {
	defer rows.Close()

	items := make([]MenuItemView, 0)
	for rows.Next() {
		v, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
