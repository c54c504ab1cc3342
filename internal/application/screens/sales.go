package screens

import (
	"context"
	"net/url"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

const (
	msgSalesListLoad = "Erro ao carregar vendas"
	msgSaleStatus    = "Erro ao atualizar status da venda"
)

// SalesQuery filtros del listado (?dataInicio=&dataFim=&status=).
type SalesQuery struct {
	From   string `query:"dataInicio"`
	To     string `query:"dataFim"`
	Status string `query:"status"`
}

func (q SalesQuery) filter() dto.SaleFilter {
	f := dto.SaleFilter{From: q.From, To: q.To}
	if entity.IsSaleStatus(q.Status) {
		f.Status = q.Status
	}
	return f
}

// SalesPage estado de Vendas.
type SalesPage struct {
	Query       SalesQuery
	Sales       View[[]entity.Sale]
	Statuses    []string
	ActionError string
	Notice      string
}

// SalesScreen listado de ventas y cambio de estado.
type SalesScreen struct {
	svc SalesService
}

// NewSalesScreen construye la pantalla.
func NewSalesScreen(svc SalesService) *SalesScreen {
	return &SalesScreen{svc: svc}
}

// Load lista las ventas con los filtros.
func (s *SalesScreen) Load(ctx context.Context, q SalesQuery) (*SalesPage, error) {
	page := &SalesPage{Query: q, Statuses: entity.SaleStatuses}
	err := page.Sales.Load(ctx, msgSalesListLoad, func(ctx context.Context) ([]entity.Sale, error) {
		return s.svc.List(ctx, q.filter())
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// UpdateStatus cambia el estado de la venta id. Con éxito devuelve nil (el handler
// redirige al listado con los filtros q); con error recarga el listado con el mensaje.
func (s *SalesScreen) UpdateStatus(ctx context.Context, q SalesQuery, id int64, status string) (*SalesPage, error) {
	var updErr error
	if !entity.IsSaleStatus(status) {
		updErr = invalid("Status de venda inválido.")
	} else {
		_, updErr = s.svc.UpdateStatus(ctx, id, status)
	}
	if updErr == nil {
		return nil, nil
	}
	msg, err := failure(updErr, msgSaleStatus)
	if err != nil {
		return nil, err
	}
	page, err := s.Load(ctx, q)
	if err != nil {
		return nil, err
	}
	page.ActionError = msg
	return page, nil
}

// Values filtros como query string, para volver al listado tras una mutación.
func (q SalesQuery) Values() url.Values {
	v := url.Values{}
	for key, val := range map[string]string{"dataInicio": q.From, "dataFim": q.To, "status": q.Status} {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}
