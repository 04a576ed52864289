package services

import (
	"fmt"
	"slices"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	DefaultTopSellingLimit = 5
	MaxTopSellingLimit     = 50

	// MissingItemName is reported for sold items that are no longer in the catalog.
	MissingItemName = "CatalogItem missing"
)

// ItemTally is the accumulated sales of one catalog item over delivered orders.
// Revenue is the exact sum of frozen unit price × quantity.
type ItemTally struct {
	ItemID     kernel.UUID
	Quantity   int
	Revenue    decimal.Decimal
	OrderCount int
}

// ItemSales is a ranked tally joined with live catalog metadata.
type ItemSales struct {
	ItemID     kernel.UUID
	Name       string
	Category   catalog.Category
	Price      kernel.Money
	ImageURL   string
	Quantity   int
	Revenue    kernel.Money
	OrderCount int
	Missing    bool
}

// CatalogEntry is the live catalog metadata shown next to a tally.
type CatalogEntry struct {
	Name     string
	Category catalog.Category
	Price    kernel.Money
	ImageURL string
}

// SalesAggregator ranks item tallies for the top-selling report.
type SalesAggregator struct{}

func NewSalesAggregator() SalesAggregator {
	return SalesAggregator{}
}

// ValidateLimit checks 1 <= limit <= MaxTopSellingLimit.
func (SalesAggregator) ValidateLimit(limit int) error {
	if limit < 1 || limit > MaxTopSellingLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxTopSellingLimit)
	}
	return nil
}

// Rank orders tallies by quantity descending, then item id ascending, and keeps the
// first limit entries. The input slice is not modified.
func (a SalesAggregator) Rank(tallies []ItemTally, limit int) ([]ItemTally, error) {
	if err := a.ValidateLimit(limit); err != nil {
		return nil, err
	}

	ranked := slices.Clone(tallies)
	slices.SortStableFunc(ranked, func(x, y ItemTally) int {
		if x.Quantity != y.Quantity {
			return y.Quantity - x.Quantity
		}
		return x.ItemID.Compare(y.ItemID)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Enrich joins ranked tallies with the catalog items found for them. Tallies whose item
// is absent from items get a MissingItemName placeholder instead of failing the report.
// Revenue is rounded to two decimals here and nowhere earlier. A revenue that is not a
// valid amount means the stored lines are corrupt and fails the report.
func (SalesAggregator) Enrich(ranked []ItemTally, items map[kernel.UUID]CatalogEntry) ([]ItemSales, error) {
	out := make([]ItemSales, 0, len(ranked))
	for _, t := range ranked {
		revenue, err := kernel.NewMoney(t.Revenue)
		if err != nil {
			return nil, fmt.Errorf("revenue of item %s: %v", t.ItemID, err)
		}

		sales := ItemSales{
			ItemID:     t.ItemID,
			Quantity:   t.Quantity,
			Revenue:    revenue,
			OrderCount: t.OrderCount,
		}

		if entry, ok := items[t.ItemID]; ok {
			sales.Name = entry.Name
			sales.Category = entry.Category
			sales.Price = entry.Price
			sales.ImageURL = entry.ImageURL
		} else {
			sales.Name = MissingItemName
			sales.Price = kernel.ZeroMoney()
			sales.Missing = true
		}

		out = append(out, sales)
	}
	return out, nil
}
