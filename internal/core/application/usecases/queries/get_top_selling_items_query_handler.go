package queries

import (
	"context"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTopSellingItemsQueryHandler builds the top-selling report.
//
// The tallies come from a single GROUP BY over the lines of delivered orders, using
// the frozen line prices. Ranking and the limit are applied by services.SalesAggregator,
// so the statement returns one row per sold item. Catalog metadata is read live in one
// more statement; items deleted since are reported with a placeholder instead of
// failing the report.
type GetTopSellingItemsQueryHandler struct {
	db         *gorm.DB
	aggregator services.SalesAggregator
}

func NewGetTopSellingItemsQueryHandler(db *gorm.DB) GetTopSellingItemsQueryHandler {
	return GetTopSellingItemsQueryHandler{db: db, aggregator: services.NewSalesAggregator()}
}

func (h GetTopSellingItemsQueryHandler) Handle(
	ctx context.Context,
	query GetTopSellingItemsQuery,
) ([]services.ItemSales, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tallies, err := h.tally(ctx)
	if err != nil {
		return nil, errs.NewStoreUnavailableError("sales.tally", err)
	}

	ranked, err := h.aggregator.Rank(tallies, query.Limit())
	if err != nil {
		return nil, err
	}

	entries, err := h.catalogEntries(ctx, ranked)
	if err != nil {
		return nil, errs.NewStoreUnavailableError("sales.catalog", err)
	}

	return h.aggregator.Enrich(ranked, entries)
}

func (h GetTopSellingItemsQueryHandler) tally(ctx context.Context) ([]services.ItemTally, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ol.menu_item_id,
			SUM(ol.quantity) AS total_quantity,
			SUM(ol.unit_price * ol.quantity) AS total_revenue,
			COUNT(DISTINCT ol.order_id) AS order_count
		FROM order_lines ol
		JOIN orders o ON o.id = ol.order_id
		WHERE o.status = ?
		GROUP BY ol.menu_item_id
	`, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tallies := make([]services.ItemTally, 0)
	for rows.Next() {
		var (
			itemID     uuid.UUID
			quantity   int64
			revenue    decimal.Decimal
			orderCount int64
		)
		if err = rows.Scan(&itemID, &quantity, &revenue, &orderCount); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}
		tallies = append(tallies, services.ItemTally{
			ItemID:     id,
			Quantity:   int(quantity),
			Revenue:    revenue,
			OrderCount: int(orderCount),
		})
	}
	return tallies, rows.Err()
}

func (h GetTopSellingItemsQueryHandler) catalogEntries(
	ctx context.Context,
	ranked []services.ItemTally,
) (map[kernel.UUID]services.CatalogEntry, error) {
	entries := make(map[kernel.UUID]services.CatalogEntry, len(ranked))
	if len(ranked) == 0 {
		return entries, nil
	}

	ids := make([]uuid.UUID, 0, len(ranked))
	for _, t := range ranked {
		ids = append(ids, t.ItemID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, category, price, image_url
		FROM menu_items
		WHERE id IN ?
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawID            uuid.UUID
			name, cat, image string
			price            decimal.Decimal
		)
		if err = rows.Scan(&rawID, &name, &cat, &price, &image); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		entries[id] = services.CatalogEntry{
			Name:     name,
			Category: catalog.Category(cat),
			Price:    money,
			ImageURL: image,
		}
	}
	return entries, rows.Err()
}
