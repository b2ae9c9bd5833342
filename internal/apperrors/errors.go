package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the write collides with existing state.
var ErrConflict = errors.New("conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = ErrConflict

// ErrUnavailable indicates that a downstream dependency could not be reached.
var ErrUnavailable = errors.New("service unavailable")

// ErrInternal marks unexpected failures whose detail must not reach the client.
var ErrInternal = errors.New("internal error")

// Revenue ledger errors. Each wraps one of the categories above so callers can
// branch on either the specific condition or its category.
var (
	ErrFutureDate        = fmt.Errorf("%w: revenue entries cannot be recorded for future dates", ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrAmountPrecision   = fmt.Errorf("%w: amount must have at most two decimal places", ErrValidation)
	ErrAmountOutOfRange  = fmt.Errorf("%w: amount must be less than 10000000000", ErrValidation)
	ErrAlreadyCancelled  = fmt.Errorf("%w: revenue entry is already cancelled", ErrValidation)
	ErrOperationNotFound = fmt.Errorf("%w: operation does not exist or is inactive", ErrNotFound)
	ErrEntryNotFound     = fmt.Errorf("%w: revenue entry not found", ErrNotFound)
	ErrDuplicateEntry    = fmt.Errorf("%w: a revenue entry already exists for this operation on this date", ErrConflict)
	ErrNoHistory         = fmt.Errorf("%w: no revenue history for this operation", ErrNotFound)
)

// AppError carries an HTTP-ish status code and a client-safe message while
// keeping the underlying cause available to errors.Is / errors.As.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError. A nil cause is replaced by the category
// sentinel matching the code so errors.Is keeps working.
func NewAppError(code int, message string, err error) *AppError {
	if err == nil {
		err = sentinelFor(code)
	}
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func NewValidationFailedError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

func NewUnavailableError(message string, cause error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, errors.Join(ErrUnavailable, cause))
}

func NewInternalServerError(message string, cause error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrInternal, cause))
}

// StatusCode maps an error to the HTTP status the boundary should answer with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

func sentinelFor(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusConflict:
		return ErrConflict
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return ErrInternal
	}
}
