package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// VendasClient /vendas.
type VendasClient struct{ c *Client }

var _ screens.SalesService = (*VendasClient)(nil)

func (v *VendasClient) Register(ctx context.Context, in dto.SaleRequest) (*entity.Sale, error) {
	var out dto.SaleResponse
	if err := v.c.do(ctx, http.MethodPost, "/vendas", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Sale, nil
}

func (v *VendasClient) List(ctx context.Context, f dto.SaleFilter) ([]entity.Sale, error) {
	var out dto.SaleListResponse
	if err := v.c.do(ctx, http.MethodGet, "/vendas", f.Query(), nil, &out); err != nil {
		return nil, err
	}
	return out.Sales, nil
}

func (v *VendasClient) Get(ctx context.Context, id int64) (*entity.Sale, error) {
	var out dto.SaleResponse
	if err := v.c.do(ctx, http.MethodGet, salePath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Sale, nil
}

// UpdateStatus PATCH /vendas/:id/status.
func (v *VendasClient) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Sale, error) {
	var out dto.SaleResponse
	in := dto.SaleStatusRequest{Status: status}
	if err := v.c.do(ctx, http.MethodPatch, salePath(id)+"/status", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Sale, nil
}

func salePath(id int64) string {
	return "/vendas/" + strconv.FormatInt(id, 10)
}
