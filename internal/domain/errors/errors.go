// Package errors defines the failures the coffee domain reports to callers.
// Each carries an HTTP status and a stable code for the API envelope.
package errors

import (
	"net/http"

	"coffeeshop/internal/errors"
)

// AppError is an error with a client-facing representation.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional extra context. It is never sent for 5xx.
	Details() string
}

type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage adds log context while keeping e matchable with errors.Is.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

//nolint:gochecknoglobals
var (
	ErrCoffeeNotFound       = NewBaseError(http.StatusNotFound, "COFFEE_NOT_FOUND", "Coffee not found", "")
	ErrCoffeeCreationFailed = NewBaseError(http.StatusInternalServerError, "COFFEE_CREATION_FAILED", "Failed to create coffee", "")
	ErrCoffeeUpdateFailed   = NewBaseError(http.StatusInternalServerError, "COFFEE_UPDATE_FAILED", "Failed to update coffee", "")
	ErrRecommendationFailed = NewBaseError(http.StatusInternalServerError, "RECOMMENDATION_FAILED", "Failed to record recommendation", "")

	// ErrFlavorConflict means a flavor insert hit a unique violation that
	// ON CONFLICT DO NOTHING could not absorb.
	ErrFlavorConflict = NewBaseError(http.StatusConflict, "FLAVOR_CONFLICT", "Flavor name is already taken", "")

	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed", "")
)

// DatabaseExecuteError wraps a driver error. Clients only see a generic
// 500; the cause stays reachable through Unwrap for logging.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
