package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidCredentials  = errors.New("usuario o contraseña inválidos")
	ErrUnknownProfileField = errors.New("campo de perfil no actualizable")
	ErrMalformedRecord     = errors.New("registro mal formado")
	ErrUnsupportedValue    = errors.New("valor no soportado en registro")
	ErrNoProducts          = errors.New("no hay productos en el catálogo")
)

// ValidationError indica qué campo falló la validación. Se compara con errors.Is(err, ErrInvalidInput).
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError construye el error para un campo.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), e.Field)
	}
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidInput.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
