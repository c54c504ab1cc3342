package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dirección de un movimiento: exactamente una de las dos.
const (
	MovementEntry = "ENTRADA"
	MovementExit  = "SAIDA"
)

// Motivos aceptados por la API para un movimiento.
const (
	ReasonPurchase   = "COMPRA"
	ReasonSale       = "VENDA"
	ReasonAdjustment = "AJUSTE"
	ReasonLoss       = "PERDA"
	ReasonTransfer   = "TRANSFERENCIA"
	ReasonOther      = "OUTRO"
)

// MovementReasons en el orden en que se ofrecen en el formulario.
var MovementReasons = []string{
	ReasonPurchase, ReasonSale, ReasonAdjustment, ReasonLoss, ReasonTransfer, ReasonOther,
}

// IsMovementType valida la dirección.
func IsMovementType(t string) bool {
	return t == MovementEntry || t == MovementExit
}

// IsMovementReason valida el motivo contra la enumeración fija.
func IsMovementReason(r string) bool {
	for _, m := range MovementReasons {
		if m == r {
			return true
		}
	}
	return false
}

// Movement entrada o salida de estoque. Inmutable una vez creado: la API no expone
// edición ni borrado.
type Movement struct {
	ID            int64           `json:"id"`
	StockItemID   int64           `json:"estoqueId"`
	Type          string          `json:"tipo"`       // ENTRADA | SAIDA
	Quantity      decimal.Decimal `json:"quantidade"` // positiva
	Reason        string          `json:"motivo"`
	Note          string          `json:"observacao,omitempty"`
	ResponsibleID int64           `json:"responsavelId"`
	Date          time.Time       `json:"dataMovimentacao"`
	StockItem     MovementItem    `json:"estoque"`
	Responsible   Responsible     `json:"responsavel"`
}

// MovementItem resumen del item embebido en el movimiento.
type MovementItem struct {
	ID       int64           `json:"id"`
	Product  string          `json:"produto"`
	Quantity decimal.Decimal `json:"quantidade"`
	Unit     string          `json:"unidade"`
	Location string          `json:"localizacao,omitempty"`
}

// Responsible usuario que registró el movimiento.
type Responsible struct {
	ID        int64  `json:"id"`
	Matricula string `json:"matricula"`
}

// StockReport relatório completo de estoque (GET /movimentacao/relatorio/estoque).
type StockReport struct {
	TotalItems      int               `json:"totalItens"`
	ItemsInStock    int               `json:"itensComEstoque"`
	ItemsOutOfStock int               `json:"itensSemEstoque"`
	Items           []StockReportItem `json:"estoque"`
}

// StockReportItem item del relatório con su historial.
type StockReportItem struct {
	ID        int64           `json:"id"`
	Product   string          `json:"produto"`
	Quantity  decimal.Decimal `json:"quantidade"`
	Unit      string          `json:"unidade"`
	Location  string          `json:"localizacao,omitempty"`
	Movements []Movement      `json:"movimentacoes"`
}
