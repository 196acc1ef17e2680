// Package response writes the JSON envelopes returned by every API route.
//
// Successful calls return {"data": ..., "meta": {...}} and failures return
// {"error": {...}, "meta": {...}}. Both carry the request id.
package response

import (
	"net/http"

	"coffeeshop/internal/delivery/api/validator"
	deliverycontext "coffeeshop/internal/delivery/context"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/errors"

	"github.com/labstack/echo/v4"
)

const codeValidationFailed = "VALIDATION_FAILED"

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failure. Code is stable for clients to switch on,
// Message is for humans.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes a failure envelope. Details are dropped on 5xx so internal
// state never leaks to clients.
func Error(c echo.Context, status int, code, message string, details any) error {
	if status >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(status, ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, code, message string) error {
	return Error(c, http.StatusBadRequest, code, message, nil)
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}

// ValidationError reports the failing fields of a validator error, or the
// bare message for anything else.
func ValidationError(c echo.Context, err error) error {
	var verr *validator.Error
	if !errors.As(err, &verr) {
		return BadRequest(c, codeValidationFailed, err.Error())
	}

	return Error(c, http.StatusBadRequest, codeValidationFailed, "Input validation failed", verr.Fields)
}

// HandleAppError renders err when it wraps a domain AppError. Other errors
// are returned with a stack so the HTTP error handler can map them.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
