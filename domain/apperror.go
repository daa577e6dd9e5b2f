package domain

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindBadRequest          ErrorKind = "BadRequest"
	KindNotFound            ErrorKind = "NotFound"
	KindConflict            ErrorKind = "Conflict"
	KindInternalServerError ErrorKind = "InternalServerError"
	KindDatabaseError       ErrorKind = "DatabaseError"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrUsernameExists = errors.New("username already exists")
)

// AppError is the error value every usecase returns to the delivery layer.
type AppError struct {
	Code    int            `json:"code"`
	Kind    ErrorKind      `json:"name"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"`
}

func NewAppError(code int, kind ErrorKind, message string, details map[string]any) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Details: details,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap keeps the underlying cause reachable through errors.Is / errors.As.
func (e *AppError) Wrap(err error) *AppError {
	e.Err = err
	return e
}

func BadRequest(message string, details map[string]any) *AppError {
	return NewAppError(http.StatusBadRequest, KindBadRequest, message, details)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, KindNotFound, message, nil)
}

func Conflict(message string, details map[string]any) *AppError {
	return NewAppError(http.StatusConflict, KindConflict, message, details)
}

func InternalServerError(message string, details map[string]any) *AppError {
	return NewAppError(http.StatusInternalServerError, KindInternalServerError, message, details)
}

func DatabaseError(err error, details map[string]any) *AppError {
	return NewAppError(http.StatusInternalServerError, KindDatabaseError, "Database error", details).Wrap(err)
}

// AsAppError unwraps err into an AppError, falling back to a generic 500.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalServerError(err.Error(), nil).Wrap(err)
}
