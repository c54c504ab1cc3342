package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// RelatoriosClient /relatorios (solo lectura).
type RelatoriosClient struct{ c *Client }

var _ screens.ReportService = (*RelatoriosClient)(nil)

func (r *RelatoriosClient) General(ctx context.Context) (*entity.GeneralReport, error) {
	var out dto.GeneralReportResponse
	if err := r.c.do(ctx, http.MethodGet, "/relatorios/geral", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Report, nil
}

func (r *RelatoriosClient) Sales(ctx context.Context, f dto.SalesReportFilter) (*entity.SalesReport, error) {
	var out dto.SalesReportResponse
	if err := r.c.do(ctx, http.MethodGet, "/relatorios/vendas", f.Query(), nil, &out); err != nil {
		return nil, err
	}
	return out.Report, nil
}

func (r *RelatoriosClient) Deliveries(ctx context.Context, f dto.DeliveriesReportFilter) (*entity.DeliveriesReport, error) {
	var out dto.DeliveriesReportResponse
	if err := r.c.do(ctx, http.MethodGet, "/relatorios/entregas", f.Query(), nil, &out); err != nil {
		return nil, err
	}
	return out.Report, nil
}

func (r *RelatoriosClient) Users(ctx context.Context) (*entity.UsersReport, error) {
	var out dto.UsersReportResponse
	if err := r.c.do(ctx, http.MethodGet, "/relatorios/usuarios", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Report, nil
}
