package screens

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// ValidationError rechazo de un formulario antes de llamar a la API.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string       { return e.Msg }
func (e *ValidationError) UserMessage() string { return e.Msg }
func (e *ValidationError) Unwrap() error       { return domain.ErrInvalidInput }

func invalid(msg string) error { return &ValidationError{Msg: msg} }

// StockForm valores crudos del formulario de item. ID > 0 es edición.
type StockForm struct {
	ID       int64  `form:"-"`
	Product  string `form:"produto"`
	Quantity string `form:"quantidade"`
	Unit     string `form:"unidade"`
	Location string `form:"localizacao"`
}

// StockFormFrom precarga el formulario de edición con un item existente.
func StockFormFrom(item entity.StockItem) StockForm {
	return StockForm{
		ID:       item.ID,
		Product:  item.Product,
		Quantity: item.Quantity.String(),
		Unit:     item.Unit,
		Location: item.Location,
	}
}

// Editing indica si el formulario edita un item existente.
func (f StockForm) Editing() bool { return f.ID > 0 }

// Request valida y arma el body. produto y unidade obligatorios; quantidade >= 0.
func (f StockForm) Request() (dto.StockItemRequest, error) {
	product := strings.TrimSpace(f.Product)
	unit := strings.TrimSpace(f.Unit)
	if product == "" || unit == "" {
		return dto.StockItemRequest{}, invalid("Preencha produto e unidade.")
	}
	qty, err := parseQuantity(f.Quantity)
	if err != nil {
		return dto.StockItemRequest{}, invalid("Informe uma quantidade válida.")
	}
	if qty.IsNegative() {
		return dto.StockItemRequest{}, invalid("A quantidade não pode ser negativa.")
	}
	return dto.StockItemRequest{
		Product:  product,
		Quantity: qty,
		Unit:     unit,
		Location: strings.TrimSpace(f.Location),
	}, nil
}

// MovementForm valores crudos del formulario de entrada/salida.
type MovementForm struct {
	Type        string `form:"-"`
	StockItemID string `form:"estoqueId"`
	Quantity    string `form:"quantidade"`
	Reason      string `form:"motivo"`
	Note        string `form:"observacao"`
}

var minMovementQuantity = decimal.NewFromInt(1)

// Request valida y arma el body: item elegido, motivo de la lista y quantidade >= 1.
// La suficiencia de estoque en salidas no se valida acá; la decide la API.
func (f MovementForm) Request() (dto.MovementRequest, error) {
	if !entity.IsMovementType(f.Type) {
		return dto.MovementRequest{}, invalid("Tipo de movimentação inválido.")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(f.StockItemID), 10, 64)
	if err != nil || id <= 0 {
		return dto.MovementRequest{}, invalid("Selecione um produto.")
	}
	if !entity.IsMovementReason(f.Reason) {
		return dto.MovementRequest{}, invalid("Selecione um motivo.")
	}
	qty, err := parseQuantity(f.Quantity)
	if err != nil || qty.LessThan(minMovementQuantity) {
		return dto.MovementRequest{}, invalid("A quantidade deve ser no mínimo 1.")
	}
	return dto.MovementRequest{
		StockItemID: id,
		Quantity:    qty,
		Reason:      f.Reason,
		Note:        strings.TrimSpace(f.Note),
	}, nil
}

// parseQuantity acepta coma o punto decimal.
func parseQuantity(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return decimal.NewFromString(s)
}
