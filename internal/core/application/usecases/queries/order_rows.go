package queries

import (
	"context"
	"database/sql"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderColumns = `
	o.id,
	o.order_number,
	o.customer_name,
	o.table_number,
	o.status,
	o.total_amount,
	o.created_at,
	o.updated_at`

func scanOrder(rows *sql.Rows) (OrderView, uuid.UUID, error) {
	var (
		v      OrderView
		id     uuid.UUID
		status string
		total  decimal.Decimal
	)
	if err := rows.Scan(
		&id,
		&v.Number,
		&v.CustomerName,
		&v.TableNumber,
		&status,
		&total,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return OrderView{}, uuid.Nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, uuid.Nil, err
	}
	v.ID = orderID

	if v.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, uuid.Nil, err
	}
	if v.Total, err = kernel.NewMoney(total); err != nil {
		return OrderView{}, uuid.Nil, err
	}
	v.Lines = make([]OrderLineView, 0)
	return v, id, nil
}

// loadLines fetches the lines of the given orders in one round trip, each list in
// line position order. Lines of deleted catalog items are kept with ItemMissing set.
func loadLines(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderLineView, error) {
	out := make(map[uuid.UUID][]OrderLineView, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			ol.order_id,
			ol.menu_item_id,
			ol.quantity,
			ol.unit_price,
			mi.name,
			mi.category,
			mi.image_url
		FROM order_lines ol
		LEFT JOIN menu_items mi ON mi.id = ol.menu_item_id
		WHERE ol.order_id IN ?
		ORDER BY ol.order_id, ol.position
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, itemID          uuid.UUID
			quantity                 int
			unitPrice                decimal.Decimal
			name, category, imageURL sql.NullString
		)
		if err = rows.Scan(&orderID, &itemID, &quantity, &unitPrice, &name, &category, &imageURL); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		out[orderID] = append(out[orderID], OrderLineView{
			ItemID:      id,
			Name:        name.String,
			Category:    catalog.Category(category.String),
			ImageURL:    imageURL.String,
			Quantity:    quantity,
			UnitPrice:   price,
			ItemMissing: !name.Valid,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
