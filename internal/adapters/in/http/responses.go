package http

import (
	"encoding/json"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
)

// envelope is the body of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Total   *int64 `json:"total,omitempty"`
	Page    *int   `json:"page,omitempty"`
	Pages   *int   `json:"pages,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(data any) envelope {
	return envelope{Success: true, Data: data}
}

func okList[T any](items []T) envelope {
	n := len(items)
	return envelope{Success: true, Count: &n, Data: items}
}

// amount renders money as a JSON number with two decimals.
func amount(m kernel.Money) json.Number {
	return json.Number(m.String())
}

type menuItemResponse struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Category        string      `json:"category"`
	Price           json.Number `json:"price"`
	FormattedPrice  string      `json:"formattedPrice"`
	Ingredients     []string    `json:"ingredients"`
	IsAvailable     bool        `json:"isAvailable"`
	PreparationTime int         `json:"preparationTime"`
	ImageURL        string      `json:"imageUrl"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func menuItemFromView(v queries.MenuItemView) menuItemResponse {
	ingredients := v.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return menuItemResponse{
		ID:              v.ID.String(),
		Name:            v.Name,
		Description:     v.Description,
		Category:        v.Category.String(),
		Price:           amount(v.Price),
		FormattedPrice:  v.Price.Formatted(),
		Ingredients:     ingredients,
		IsAvailable:     v.Available,
		PreparationTime: v.PreparationTime,
		ImageURL:        v.ImageURL,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func menuItemsFromViews(views []queries.MenuItemView) []menuItemResponse {
	out := make([]menuItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, menuItemFromView(v))
	}
	return out
}

type orderLineResponse struct {
	MenuItem    string      `json:"menuItem"`
	Name        string      `json:"name,omitempty"`
	Category    string      `json:"category,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	ItemMissing bool        `json:"itemMissing,omitempty"`
	Quantity    int         `json:"quantity"`
	Price       json.Number `json:"price"`
	Subtotal    json.Number `json:"subtotal"`
}

type orderResponse struct {
	ID             string              `json:"id"`
	OrderNumber    string              `json:"orderNumber"`
	CustomerName   string              `json:"customerName"`
	TableNumber    int                 `json:"tableNumber"`
	Status         string              `json:"status"`
	Items          []orderLineResponse `json:"items"`
	ItemCount      int                 `json:"itemCount"`
	TotalAmount    json.Number         `json:"totalAmount"`
	FormattedTotal string              `json:"formattedTotal"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func orderFromView(v queries.OrderView) orderResponse {
	items := make([]orderLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		items = append(items, orderLineResponse{
			MenuItem:    l.ItemID.String(),
			Name:        l.Name,
			Category:    l.Category.String(),
			ImageURL:    l.ImageURL,
			ItemMissing: l.ItemMissing,
			Quantity:    l.Quantity,
			Price:       amount(l.UnitPrice),
			Subtotal:    amount(l.Subtotal()),
		})
	}
	return orderResponse{
		ID:             v.ID.String(),
		OrderNumber:    v.Number,
		CustomerName:   v.CustomerName,
		TableNumber:    v.TableNumber,
		Status:         v.Status.String(),
		Items:          items,
		ItemCount:      v.ItemCount(),
		TotalAmount:    amount(v.Total),
		FormattedTotal: v.Total.Formatted(),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

type topSellingItemResponse struct {
	MenuItemID    string      `json:"menuItemId"`
	Name          string      `json:"name"`
	Category      string      `json:"category,omitempty"`
	Price         json.Number `json:"price"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	TotalQuantity int         `json:"totalQuantity"`
	TotalRevenue  json.Number `json:"totalRevenue"`
	OrderCount    int         `json:"orderCount"`
	Missing       bool        `json:"missing,omitempty"`
}

func topSellingFromSales(sales []services.ItemSales) []topSellingItemResponse {
	out := make([]topSellingItemResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, topSellingItemResponse{
			MenuItemID:    s.ItemID.String(),
			Name:          s.Name,
			Category:      s.Category.String(),
			Price:         amount(s.Price),
			ImageURL:      s.ImageURL,
			TotalQuantity: s.Quantity,
			TotalRevenue:  amount(s.Revenue),
			OrderCount:    s.OrderCount,
			Missing:       s.Missing,
		})
	}
	return out
}

func viewOfItem(i *catalog.Item) queries.MenuItemView {
	return queries.MenuItemView{
		ID:              i.ID(),
		Name:            i.Name(),
		Description:     i.Description(),
		Category:        i.Category(),
		Price:           i.Price(),
		Ingredients:     i.Ingredients(),
		Available:       i.IsAvailable(),
		PreparationTime: i.PreparationTime(),
		ImageURL:        i.ImageURL(),
		CreatedAt:       i.CreatedAt(),
		UpdatedAt:       i.UpdatedAt(),
	}
}
