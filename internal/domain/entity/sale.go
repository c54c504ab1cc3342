package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusPending  = "pendente"
	SaleStatusApproved = "aprovada"
	SaleStatusCanceled = "cancelada"
)

// SaleStatuses estados que acepta PATCH /vendas/:id/status.
var SaleStatuses = []string{SaleStatusPending, SaleStatusApproved, SaleStatusCanceled}

// IsSaleStatus valida un estado de venta.
func IsSaleStatus(s string) bool {
	for _, st := range SaleStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Sale venta registrada en la API.
type Sale struct {
	ID         int64           `json:"id"`
	CustomerID *int64          `json:"clienteId,omitempty"`
	SellerID   int64           `json:"vendedorId"`
	Date       time.Time       `json:"dataVenda"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	Note       string          `json:"observacao,omitempty"`
	Items      []SaleItem      `json:"itens"`
	Customer   *SaleCustomer   `json:"cliente,omitempty"`
	Seller     SaleSeller      `json:"vendedor"`
}

// SaleItem línea de una venta.
type SaleItem struct {
	ID          int64           `json:"id"`
	SaleID      int64           `json:"vendaId"`
	StockItemID int64           `json:"estoqueId"`
	Quantity    decimal.Decimal `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"precoUnitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	StockItem   SaleItemStock   `json:"estoque"`
}

// SaleItemStock resumen del item de estoque vendido.
type SaleItemStock struct {
	ID      int64  `json:"id"`
	Product string `json:"produto"`
	Unit    string `json:"unidade"`
}

// SaleCustomer cliente asociado (opcional).
type SaleCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email,omitempty"`
	Phone string `json:"telefone,omitempty"`
}

// SaleSeller vendedor que registró la venta.
type SaleSeller struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Matricula string `json:"matricula"`
}
