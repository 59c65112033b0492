package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials (API key, token, password).
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates valid credentials for an account that may not proceed.
var ErrForbidden = errors.New("forbidden")

// ErrDepartmentInUse is returned when a department still has employees assigned.
// It wraps ErrValidation so callers mapping on ErrValidation answer 400.
var ErrDepartmentInUse = NewAppError(ErrValidation, "Impossible de supprimer le département, des employés y sont affectés")

// AppError pairs one of the sentinel errors above with a message safe to
// return to API clients.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Kind }

// NewAppError creates an AppError of the given kind.
func NewAppError(kind error, message string) error {
	return &AppError{Kind: kind, Message: message}
}

// Message returns the client-facing message carried by err, or fallback
// when err carries none.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
