package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrUnauthorized la API remota rechazó la sesión (401); la consola debe volver a /login.
	ErrUnauthorized = errors.New("sesión no autorizada")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrEmptyToken login exitoso sin token en la respuesta.
	ErrEmptyToken = errors.New("respuesta de login sin token")
)
