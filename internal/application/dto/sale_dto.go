package dto

import (
	"net/url"
	"strconv"

	"github.com/jhoicas/logistica-console/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SaleRequest body de POST /vendas.
type SaleRequest struct {
	CustomerID *int64            `json:"clienteId,omitempty"`
	Note       string            `json:"observacao,omitempty"`
	Items      []SaleItemRequest `json:"itens"`
}

// SaleItemRequest línea de una venta nueva.
type SaleItemRequest struct {
	StockItemID int64           `json:"estoqueId"`
	Quantity    decimal.Decimal `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"precoUnitario"`
}

// SaleStatusRequest body de PATCH /vendas/:id/status.
type SaleStatusRequest struct {
	Status string `json:"status"`
}

// SaleFilter filtros de GET /vendas.
type SaleFilter struct {
	From       string
	To         string
	Status     string
	SellerID   int64
	CustomerID int64
}

// Query codifica el filtro como parámetros de consulta.
func (f SaleFilter) Query() url.Values {
	q := url.Values{}
	if f.From != "" {
		q.Set("dataInicio", f.From)
	}
	if f.To != "" {
		q.Set("dataFim", f.To)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.SellerID > 0 {
		q.Set("vendedorId", strconv.FormatInt(f.SellerID, 10))
	}
	if f.CustomerID > 0 {
		q.Set("clienteId", strconv.FormatInt(f.CustomerID, 10))
	}
	return q
}

// SaleListResponse GET /vendas.
type SaleListResponse struct {
	Envelope
	Sales []entity.Sale `json:"vendas"`
}

// SaleResponse POST /vendas y GET /vendas/:id.
type SaleResponse struct {
	Envelope
	Sale *entity.Sale `json:"venda"`
}
