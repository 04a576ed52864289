package http

import (
	"net/http"
	"time"

	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// RouterConfig carries the transport settings of the API.
type RouterConfig struct {
	RequestTimeout time.Duration
	Registry       *prometheus.Registry
	// AllowOrigins lists the browser origins allowed to call the API with credentials.
	// CORS is off when empty.
	AllowOrigins []string
}

// NewRouter builds the echo instance with middleware, error handling and all routes.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	m := metrics.NewServerMetrics(cfg.Registry, "api")

	e.Use(middleware.Recover())
	if len(cfg.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.AllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowCredentials: true,
		}))
	}
	e.Use(s.requestLogger())
	e.Use(instrument(m))
	if cfg.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(cfg.RequestTimeout))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Registry)))

	menu := e.Group("/api/menu")
	menu.GET("", s.ListMenuItems)
	menu.GET("/search", s.SearchMenuItems)
	menu.GET("/:id", s.GetMenuItem)
	menu.POST("", s.CreateMenuItem)
	menu.PUT("/:id", s.UpdateMenuItem)
	menu.DELETE("/:id", s.DeleteMenuItem)
	menu.PATCH("/:id/availability", s.ToggleMenuItemAvailability)

	orders := e.Group("/api/order")
	orders.GET("/analytics/top-selling", s.GetTopSellingItems)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.POST("", s.CreateOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)

	return e
}
