package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain"
)

// Error respuesta no exitosa de la API: un status fuera de 2xx, o un 2xx con success=false.
type Error struct {
	Status  int
	Code    string
	Message string
}

func newError(status int, body []byte) *Error {
	e := &Error{Status: status}
	var resp dto.ErrorResponse
	if json.Unmarshal(body, &resp) == nil {
		e.Code = resp.Code
		e.Message = strings.TrimSpace(resp.Message)
	}
	return e
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: HTTP %d", e.Status)
	}
	return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
}

// Unwrap permite errors.Is contra los errores de dominio.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	}
	return nil
}

// UserMessage mensaje de la API apto para mostrar; vacío si no vino ninguno.
func (e *Error) UserMessage() string {
	return e.Message
}
