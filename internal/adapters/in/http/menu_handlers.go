package http

import (
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// menuItemRequest is the body of POST and PUT. Pointer fields distinguish an
// omitted value from a zero one.
type menuItemRequest struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	Price           *decimal.Decimal `json:"price"`
	Ingredients     []string         `json:"ingredients"`
	IsAvailable     *bool            `json:"isAvailable"`
	PreparationTime *int             `json:"preparationTime"`
	ImageURL        string           `json:"imageUrl"`
}

func (r menuItemRequest) details() (catalog.Details, error) {
	if r.Category == "" {
		return catalog.Details{}, errs.NewValueIsRequiredError("category")
	}
	category, err := catalog.ParseCategory(r.Category)
	if err != nil {
		return catalog.Details{}, err
	}
	if r.Price == nil {
		return catalog.Details{}, errs.NewValueIsRequiredError("price")
	}
	if r.PreparationTime == nil {
		return catalog.Details{}, errs.NewValueIsRequiredError("preparationTime")
	}

	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}

	return catalog.Details{
		Name:            r.Name,
		Description:     r.Description,
		Category:        category,
		Price:           *r.Price,
		Ingredients:     r.Ingredients,
		Available:       available,
		PreparationTime: *r.PreparationTime,
		ImageURL:        r.ImageURL,
	}, nil
}

// ListMenuItems handles GET /api/menu?category=&isAvailable=&minPrice=&maxPrice=.
func (s *Server) ListMenuItems(c echo.Context) error {
	var filter queries.MenuFilter

	if raw := c.QueryParam("category"); raw != "" {
		category, err := catalog.ParseCategory(raw)
		if err != nil {
			return err
		}
		filter.Category = &category
	}
	if c.QueryParams().Has("isAvailable") {
		available := c.QueryParam("isAvailable") == "true"
		filter.IsAvailable = &available
	}
	for param, target := range map[string]**decimal.Decimal{
		"minPrice": &filter.MinPrice,
		"maxPrice": &filter.MaxPrice,
	} {
		raw := c.QueryParam(param)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(param, err)
		}
		*target = &value
	}

	query, err := queries.NewListMenuItemsQuery(filter)
	if err != nil {
		return err
	}

	items, err := s.h.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okList(menuItemsFromViews(items)))
}

// SearchMenuItems handles GET /api/menu/search?q=.
func (s *Server) SearchMenuItems(c echo.Context) error {
	query, err := queries.NewSearchMenuItemsQuery(c.QueryParam("q"))
	if err != nil {
		return err
	}

	items, err := s.h.SearchMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okList(menuItemsFromViews(items)))
}

// GetMenuItem handles GET /api/menu/:id.
func (s *Server) GetMenuItem(c echo.Context) error {
	id, err := pathID(c, "menuItem")
	if err != nil {
		return err
	}

	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return err
	}

	item, err := s.h.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(menuItemFromView(item)))
}

// CreateMenuItem handles POST /api/menu.
func (s *Server) CreateMenuItem(c echo.Context) error {
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), details)
	if err != nil {
		return err
	}

	item, err := s.h.CreateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ok(menuItemFromView(viewOfItem(item))))
}

// UpdateMenuItem handles PUT /api/menu/:id. The body replaces every editable field.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	id, err := pathID(c, "menuItem")
	if err != nil {
		return err
	}

	var req menuItemRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, details)
	if err != nil {
		return err
	}

	item, err := s.h.UpdateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(menuItemFromView(viewOfItem(item))))
}

// DeleteMenuItem handles DELETE /api/menu/:id.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	id, err := pathID(c, "menuItem")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Menu item deleted successfully",
		Data:    struct{}{},
	})
}

// ToggleMenuItemAvailability handles PATCH /api/menu/:id/availability.
func (s *Server) ToggleMenuItemAvailability(c echo.Context) error {
	id, err := pathID(c, "menuItem")
	if err != nil {
		return err
	}

	cmd, err := commands.NewToggleMenuItemAvailabilityCommand(id)
	if err != nil {
		return err
	}

	item, err := s.h.ToggleMenuItemAvailability.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(menuItemFromView(viewOfItem(item))))
}
