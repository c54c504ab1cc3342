package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem item del estoque. Lo administra la API remota; la consola solo guarda
// una copia por pantalla que se recarga completa tras cada alta, edición o baja.
type StockItem struct {
	ID        int64           `json:"id"`
	Product   string          `json:"produto"`
	Quantity  decimal.Decimal `json:"quantidade"` // nunca negativa
	Unit      string          `json:"unidade"`
	Location  string          `json:"localizacao,omitempty"`
	CreatedAt time.Time       `json:"criadoEm"`
	UpdatedAt time.Time       `json:"atualizadoEm"`
}

// InStock indica si queda cantidad disponible.
func (i StockItem) InStock() bool {
	return i.Quantity.IsPositive()
}
