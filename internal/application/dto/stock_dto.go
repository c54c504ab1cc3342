package dto

import (
	"github.com/jhoicas/logistica-console/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockItemRequest body de POST /estoque y PUT /estoque/:id.
type StockItemRequest struct {
	Product  string          `json:"produto"`
	Quantity decimal.Decimal `json:"quantidade"`
	Unit     string          `json:"unidade"`
	Location string          `json:"localizacao,omitempty"`
}

// StockListResponse GET /estoque.
type StockListResponse struct {
	Envelope
	Items []entity.StockItem `json:"estoque"`
}

// StockItemResponse POST, PUT y GET /estoque/:id.
type StockItemResponse struct {
	Envelope
	Item *entity.StockItem `json:"item"`
}
