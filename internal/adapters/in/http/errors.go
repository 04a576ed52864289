package http

import (
	"errors"
	"fmt"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		bindErr *echo.BindingError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &bindErr):
		return bindErr.Code
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrStoreUnavailable),
		errors.Is(err, commands.ErrOrderSequenceExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, catalog.ErrItemUnavailable),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor is the client facing text. Infrastructure details stay in the logs.
func messageFor(err error, status int) string {
	var (
		bindErr     *echo.BindingError
		httpErr     *echo.HTTPError
		itemMissing *catalog.ItemNotFoundError
		notFound    *errs.ObjectNotFoundError
	)
	switch {
	case errors.As(err, &bindErr):
		return fmt.Sprintf("invalid value for %s", bindErr.Field)
	case errors.As(err, &httpErr):
		return fmt.Sprint(httpErr.Message)
	case status == http.StatusInternalServerError:
		return "Server Error"
	case status == http.StatusServiceUnavailable:
		if errors.Is(err, commands.ErrOrderSequenceExhausted) {
			return "Order capacity for today is exhausted, try again tomorrow"
		}
		return "Service temporarily unavailable, please retry"
	case errors.As(err, &itemMissing):
		return fmt.Sprintf("Menu item with ID %s not found", itemMissing.ItemID)
	case errors.As(err, &notFound):
		return notFoundMessage(notFound.ParamName)
	default:
		return err.Error()
	}
}

func notFoundMessage(resource string) string {
	switch resource {
	case "order":
		return "Order not found"
	case "menuItem":
		return "Menu item not found"
	default:
		return "Resource not found"
	}
}

// handleError is the echo HTTPErrorHandler. It writes the failure envelope and logs
// server side failures.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"status", status,
			"error", err,
		)
	}

	body := envelope{Success: false, Message: messageFor(err, status)}
	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "writing error response", "error", writeErr)
	}
}
