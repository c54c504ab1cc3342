package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// EstoqueClient CRUD de /estoque.
type EstoqueClient struct{ c *Client }

var _ screens.StockService = (*EstoqueClient)(nil)

func (e *EstoqueClient) List(ctx context.Context) ([]entity.StockItem, error) {
	var out dto.StockListResponse
	if err := e.c.do(ctx, http.MethodGet, "/estoque", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (e *EstoqueClient) Get(ctx context.Context, id int64) (*entity.StockItem, error) {
	var out dto.StockItemResponse
	if err := e.c.do(ctx, http.MethodGet, stockPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (e *EstoqueClient) Create(ctx context.Context, in dto.StockItemRequest) (*entity.StockItem, error) {
	var out dto.StockItemResponse
	if err := e.c.do(ctx, http.MethodPost, "/estoque", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (e *EstoqueClient) Update(ctx context.Context, id int64, in dto.StockItemRequest) (*entity.StockItem, error) {
	var out dto.StockItemResponse
	if err := e.c.do(ctx, http.MethodPut, stockPath(id), nil, in, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (e *EstoqueClient) Delete(ctx context.Context, id int64) error {
	var out dto.Envelope
	return e.c.do(ctx, http.MethodDelete, stockPath(id), nil, nil, &out)
}

func stockPath(id int64) string {
	return "/estoque/" + strconv.FormatInt(id, 10)
}
