// Package server provides the HTTP REST API for resume-nest.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-nest/internal/db"
	"github.com/jonathan/resume-nest/internal/schemas"
)

// ErrEmailAlreadyExists indicates email is already registered.
// The address is kept for logging and is not part of the message.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return "email already registered"
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrResumeNotFound indicates the resume is missing or owned by another user.
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return "resume not found"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrExportUnavailable indicates no print driver is available on this host.
type ErrExportUnavailable struct{}

func (e *ErrExportUnavailable) Error() string {
	return "export unavailable: no print driver configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists   *ErrEmailAlreadyExists
		invalidCreds  *ErrInvalidCredentials
		userNotFound  *ErrUserNotFound
		resumeMissing *ErrResumeNotFound
		validation    *ErrValidation
		schemaErr     *schemas.ValidationError
		unavailable   *ErrExportUnavailable
	)

	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &invalidCreds):
		return http.StatusUnauthorized
	case errors.As(err, &userNotFound), errors.As(err, &resumeMissing):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the client-facing message for err.
// Server errors get a generic message; details are only logged.
func publicMessage(err error) string {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		return "internal server error"
	}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return "validation error: " + schemaErr.First()
	}
	if errors.Is(err, db.ErrNotFound) {
		return "not found"
	}
	return err.Error()
}
