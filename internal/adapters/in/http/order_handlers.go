package http

import (
	"fmt"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	Items []struct {
		MenuItem string `json:"menuItem"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	CustomerName string `json:"customerName"`
	TableNumber  int    `json:"tableNumber"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder handles POST /api/order.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	lines := make([]commands.RequestedLine, 0, len(req.Items))
	for i, item := range req.Items {
		id, err := kernel.UUIDFromString(item.MenuItem)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].menuItem", i), err)
		}
		lines = append(lines, commands.RequestedLine{ItemID: id, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.CustomerName, req.TableNumber, lines)
	if err != nil {
		return err
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.logger.InfoContext(c.Request().Context(), "order created",
		"orderId", created.ID().String(),
		"orderNumber", created.Number().String(),
		"total", created.Total().String(),
	)
	return s.renderOrder(c, http.StatusCreated, created.ID())
}

// GetOrder handles GET /api/order/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "order")
	if err != nil {
		return err
	}
	return s.renderOrder(c, http.StatusOK, id)
}

// ListOrders handles GET /api/order?status=&page=&limit=.
func (s *Server) ListOrders(c echo.Context) error {
	var page, limit int
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError(); err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(c.QueryParam("status"), page, limit)
	if err != nil {
		return err
	}

	result, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	orders := make([]orderResponse, 0, len(result.Orders))
	for _, v := range result.Orders {
		orders = append(orders, orderFromView(v))
	}
	count := len(orders)
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Count:   &count,
		Total:   &result.Total,
		Page:    &result.Page,
		Pages:   &result.TotalPages,
		Data:    orders,
	})
}

// UpdateOrderStatus handles PATCH /api/order/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "order")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if req.Status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, req.Status)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.logger.InfoContext(c.Request().Context(), "order status changed",
		"orderId", updated.ID().String(),
		"status", updated.Status().String(),
	)
	return s.renderOrder(c, http.StatusOK, updated.ID())
}

// GetTopSellingItems handles GET /api/order/analytics/top-selling?limit=.
func (s *Server) GetTopSellingItems(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return err
	}

	query, err := queries.NewGetTopSellingItemsQuery(limit)
	if err != nil {
		return err
	}

	sales, err := s.h.TopSellingItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okList(topSellingFromSales(sales)))
}

// renderOrder reads the display view so lines carry item names and categories.
func (s *Server) renderOrder(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, ok(orderFromView(view)))
}

// pathID parses the :id parameter. A malformed id is reported like a missing one.
func pathID(c echo.Context, resource string) (kernel.UUID, error) {
	raw := c.Param("id")
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(resource, raw, err)
	}
	return id, nil
}
