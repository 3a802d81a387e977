package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage is returned when a Redis key is missing.
	RedisNotFoundMessage = "redis key not found"
)

// Sentinel kinds. Match them with errors.Is; the AppError wrapping them
// carries the HTTP status and the safe message.
var (
	ErrInvalidProductID   = errors.New("invalid product id")
	ErrProductNotFound    = errors.New("product not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrCheckoutNotStarted = errors.New("checkout not started")
	ErrInvalidTransition  = errors.New("invalid checkout transition")
	ErrIncompleteShipping = errors.New("incomplete shipping details")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// InvalidProductID rejects identifiers that can never name a catalog product.
func InvalidProductID(id int) *AppError {
	return New(ErrInvalidProductID, http.StatusBadRequest, fmt.Sprintf("product id must be positive, got %d", id))
}

func ProductNotFound(id int) *AppError {
	return New(ErrProductNotFound, http.StatusNotFound, fmt.Sprintf("product %d does not exist", id))
}

func SessionNotFound(id string) *AppError {
	return New(ErrSessionNotFound, http.StatusNotFound, fmt.Sprintf("session %q does not exist", id))
}

func CheckoutNotStarted(sessionID string) *AppError {
	return New(ErrCheckoutNotStarted, http.StatusConflict, fmt.Sprintf("session %q has no active checkout", sessionID))
}

// InvalidTransition reports a checkout step change the state machine does not allow.
func InvalidTransition(from, to string) *AppError {
	return New(ErrInvalidTransition, http.StatusConflict, fmt.Sprintf("cannot move checkout from %s to %s", from, to))
}

// IncompleteShipping lists the shipping fields that were left blank.
func IncompleteShipping(missing []string) *AppError {
	return New(ErrIncompleteShipping, http.StatusUnprocessableEntity, fmt.Sprintf("missing shipping fields: %v", missing))
}

// StatusOf returns the HTTP status carried by err, or 500 when err is not an AppError.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the safe message carried by err. Errors that are not
// AppErrors never leak their text to clients.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return SystemErrorMessage
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}
