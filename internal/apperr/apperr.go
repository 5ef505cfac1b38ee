// Package apperr asocia errores internos con un status HTTP y un mensaje seguro
// para el cliente.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, status int, message string) *AppError {
	return &AppError{Err: err, Status: status, Message: message}
}

func NotFound(err error, message string) *AppError {
	return New(err, http.StatusNotFound, message)
}

func Internal(err error, message string) *AppError {
	return New(err, http.StatusInternalServerError, message)
}

// StatusOf devuelve el status del primer AppError de la cadena; 500 si no hay
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
