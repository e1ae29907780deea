package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
// Cada sentinel específico envuelve a su categoría para que la capa HTTP
// pueda clasificar con errors.Is sin conocer todos los casos.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidID    = errors.New("invalid identifier")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrUserNotFound    = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product not found: %w", ErrNotFound)

	ErrMissingToken       = fmt.Errorf("no token supplied: %w", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("invalid or expired token: %w", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	// ErrTokenUserNotFound el token es válido pero su usuario ya no existe.
	ErrTokenUserNotFound = fmt.Errorf("user not found: %w", ErrUnauthorized)

	ErrAdminRequired   = fmt.Errorf("admin role required: %w", ErrForbidden)
	ErrNotOwner        = fmt.Errorf("not permitted to modify this resource: %w", ErrForbidden)
	ErrInactiveAccount = fmt.Errorf("account is inactive: %w", ErrForbidden)

	ErrInvalidRole      = fmt.Errorf(`invalid role, must be "user" or "admin": %w`, ErrBadRequest)
	ErrSelfDeactivation = fmt.Errorf("cannot deactivate own account: %w", ErrBadRequest)
)

// FieldError describe una violación de restricción sobre un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las violaciones encontradas en una entrada.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// DuplicateKeyError indica violación de unicidad sobre Field.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("the %s already exists", e.Field)
}
