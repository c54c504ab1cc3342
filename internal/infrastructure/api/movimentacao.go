package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// MovimentacaoClient /movimentacao: entradas, salidas, historial y relatório de estoque.
type MovimentacaoClient struct{ c *Client }

var _ screens.MovementService = (*MovimentacaoClient)(nil)

// RegisterEntry POST /movimentacao/entrada.
func (m *MovimentacaoClient) RegisterEntry(ctx context.Context, in dto.MovementRequest) (*entity.Movement, error) {
	return m.register(ctx, "/movimentacao/entrada", in)
}

// RegisterExit POST /movimentacao/saida. La suficiencia de estoque la valida la API.
func (m *MovimentacaoClient) RegisterExit(ctx context.Context, in dto.MovementRequest) (*entity.Movement, error) {
	return m.register(ctx, "/movimentacao/saida", in)
}

func (m *MovimentacaoClient) register(ctx context.Context, path string, in dto.MovementRequest) (*entity.Movement, error) {
	var out dto.MovementResponse
	if err := m.c.do(ctx, http.MethodPost, path, nil, in, &out); err != nil {
		return nil, err
	}
	return out.Movement, nil
}

// List GET /movimentacao con filtros opcionales.
func (m *MovimentacaoClient) List(ctx context.Context, f dto.MovementFilter) ([]entity.Movement, error) {
	var out dto.MovementListResponse
	if err := m.c.do(ctx, http.MethodGet, "/movimentacao", f.Query(), nil, &out); err != nil {
		return nil, err
	}
	return out.Movements, nil
}

func (m *MovimentacaoClient) Get(ctx context.Context, id int64) (*entity.Movement, error) {
	var out dto.MovementResponse
	if err := m.c.do(ctx, http.MethodGet, "/movimentacao/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Movement, nil
}

// StockReport GET /movimentacao/relatorio/estoque.
func (m *MovimentacaoClient) StockReport(ctx context.Context) (*entity.StockReport, error) {
	var out dto.StockReportResponse
	if err := m.c.do(ctx, http.MethodGet, "/movimentacao/relatorio/estoque", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Report, nil
}
