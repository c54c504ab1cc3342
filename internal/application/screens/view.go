package screens

import (
	"context"
	"errors"

	"github.com/jhoicas/logistica-console/internal/domain"
)

// View estado de un bloque de datos de una pantalla.
//
// La página solo se envía cuando la primera carga terminó, así que no hay estado
// "cargando": Loaded distingue "todavía nada" de "cargado vacío".
type View[T any] struct {
	Data   T
	Loaded bool
	Error  string
}

// Load ejecuta fn. Con éxito reemplaza Data entero; con error deja Data como estaba
// y guarda el mensaje de la API o fallback. Solo devuelve error para ErrUnauthorized.
func (v *View[T]) Load(ctx context.Context, fallback string, fn func(context.Context) (T, error)) error {
	data, err := fn(ctx)
	v.Loaded = true
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		v.Error = Message(err, fallback)
		return nil
	}
	v.Data = data
	v.Error = ""
	return nil
}

// Message mensaje apto para el usuario: el que trae el error (API o validación) o fallback.
func Message(err error, fallback string) string {
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

// failure separa el 401 (se propaga) del resto (mensaje para la pantalla).
func failure(err error, fallback string) (string, error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		return "", err
	}
	return Message(err, fallback), nil
}
