package http

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// Use case contracts the API depends on. The command and query handlers of the
// application layer satisfy them; tests substitute mocks.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersResponse, error)
	}
	TopSellingItemsHandler interface {
		Handle(ctx context.Context, query queries.GetTopSellingItemsQuery) ([]services.ItemSales, error)
	}
	CreateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*catalog.Item, error)
	}
	UpdateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) (*catalog.Item, error)
	}
	DeleteMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteMenuItemCommand) error
	}
	ToggleMenuItemAvailabilityHandler interface {
		Handle(ctx context.Context, cmd commands.ToggleMenuItemAvailabilityCommand) (*catalog.Item, error)
	}
	GetMenuItemHandler interface {
		Handle(ctx context.Context, query queries.GetMenuItemQuery) (queries.MenuItemView, error)
	}
	ListMenuItemsHandler interface {
		Handle(ctx context.Context, query queries.ListMenuItemsQuery) ([]queries.MenuItemView, error)
	}
	SearchMenuItemsHandler interface {
		Handle(ctx context.Context, query queries.SearchMenuItemsQuery) ([]queries.MenuItemView, error)
	}
)

// Handlers bundles every use case served over HTTP.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	GetOrder          GetOrderHandler
	ListOrders        ListOrdersHandler
	TopSellingItems   TopSellingItemsHandler

	CreateMenuItem             CreateMenuItemHandler
	UpdateMenuItem             UpdateMenuItemHandler
	DeleteMenuItem             DeleteMenuItemHandler
	ToggleMenuItemAvailability ToggleMenuItemAvailabilityHandler
	GetMenuItem                GetMenuItemHandler
	ListMenuItems              ListMenuItemsHandler
	SearchMenuItems            SearchMenuItemsHandler
}

// Server translates HTTP requests into commands and queries and renders the results
// in the response envelope.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}
