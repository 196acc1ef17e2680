package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"coffeeshop/internal/delivery/api/response"
	deliverycontext "coffeeshop/internal/delivery/context"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is installed as echo's HTTPErrorHandler. It turns every
// error that reaches the router into the standard error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

	if c.Response().Committed {
		logger.Warn("Error after response was committed", slog.Any("error", err))

		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &appErr):
		_ = response.HandleAppError(c, appErr)

	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), message, nil)

	case errors.IsAny(err, context.Canceled, context.DeadlineExceeded):
		logger.Warn("Request aborted", slog.Any("error", err), slog.String("path", req.URL.Path))
		_ = response.Error(c, http.StatusServiceUnavailable, "REQUEST_ABORTED", "Request was cancelled or timed out", nil)

	default:
		// Unknown errors are logged in full but reach the client as a generic 500.
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "ROUTE_NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case http.StatusServiceUnavailable:
		return "REQUEST_ABORTED"
	default:
		return "HTTP_ERROR"
	}
}
