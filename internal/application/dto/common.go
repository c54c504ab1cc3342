package dto

import "github.com/shopspring/decimal"

func init() {
	// La API remota intercambia cantidades y montos como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Envelope campos comunes a todas las respuestas de la API: success y message.
// El payload viaja en un campo con el nombre del recurso (estoque, movimentacao, ...).
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse cuerpo de error HTTP de la API.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Rejected indica un 2xx con success=false; la API lo usa para errores de negocio.
func (e Envelope) Rejected() (string, bool) {
	return e.Message, !e.Success
}
