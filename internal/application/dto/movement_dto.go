package dto

import (
	"net/url"
	"strconv"

	"github.com/jhoicas/logistica-console/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MovementRequest body de POST /movimentacao/entrada y /movimentacao/saida.
type MovementRequest struct {
	StockItemID int64           `json:"estoqueId"`
	Quantity    decimal.Decimal `json:"quantidade"`
	Reason      string          `json:"motivo"`
	Note        string          `json:"observacao,omitempty"`
}

// MovementFilter filtros de GET /movimentacao. Los vacíos no se envían.
type MovementFilter struct {
	StockItemID int64
	Type        string // ENTRADA | SAIDA
	From        string // dataInicio (YYYY-MM-DD)
	To          string // dataFim
}

// Query codifica el filtro como parámetros de consulta.
func (f MovementFilter) Query() url.Values {
	q := url.Values{}
	if f.StockItemID > 0 {
		q.Set("estoqueId", strconv.FormatInt(f.StockItemID, 10))
	}
	if f.Type != "" {
		q.Set("tipo", f.Type)
	}
	if f.From != "" {
		q.Set("dataInicio", f.From)
	}
	if f.To != "" {
		q.Set("dataFim", f.To)
	}
	return q
}

// MovementListResponse GET /movimentacao.
type MovementListResponse struct {
	Envelope
	Movements []entity.Movement `json:"movimentacoes"`
}

// MovementResponse POST entrada/saida y GET /movimentacao/:id.
type MovementResponse struct {
	Envelope
	Movement *entity.Movement `json:"movimentacao"`
}

// StockReportResponse GET /movimentacao/relatorio/estoque.
type StockReportResponse struct {
	Envelope
	Report *entity.StockReport `json:"relatorio"`
}
