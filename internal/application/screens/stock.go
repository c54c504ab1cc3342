package screens

import (
	"context"

	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// Mensajes de Gestão de Estoque cuando la API no envía uno propio.
const (
	msgStockLoad   = "Erro ao carregar estoque"
	msgStockSave   = "Erro ao salvar item"
	msgStockDelete = "Erro ao excluir item"
)

// StockPage estado de Gestão de Estoque. Form queda abierto con los valores
// enviados cuando el guardado falló.
type StockPage struct {
	Items       View[[]entity.StockItem]
	Form        *StockForm
	FormError   string
	ActionError string
	Notice      string
}

// Count cantidad de items listados.
func (p *StockPage) Count() int { return len(p.Items.Data) }

// StockScreen casos de uso de Gestão de Estoque.
type StockScreen struct {
	svc StockService
}

// NewStockScreen construye la pantalla.
func NewStockScreen(svc StockService) *StockScreen {
	return &StockScreen{svc: svc}
}

// Load lista el estoque.
func (s *StockScreen) Load(ctx context.Context) (*StockPage, error) {
	page := &StockPage{}
	if err := page.Items.Load(ctx, msgStockLoad, s.svc.List); err != nil {
		return nil, err
	}
	return page, nil
}

// Edit carga la página con el formulario de edición del item id abierto.
func (s *StockScreen) Edit(ctx context.Context, id int64) (*StockPage, error) {
	page, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range page.Items.Data {
		if item.ID == id {
			form := StockFormFrom(item)
			page.Form = &form
			return page, nil
		}
	}
	if page.Items.Error == "" {
		page.ActionError = "Item não encontrado."
	}
	return page, nil
}

// Save crea (ID == 0) o actualiza el item. Con éxito devuelve una página nil: el
// handler redirige y la recarga la hace el GET siguiente. Con error recarga la
// lista y deja el formulario abierto con lo enviado y el mensaje.
func (s *StockScreen) Save(ctx context.Context, form StockForm) (*StockPage, error) {
	req, err := form.Request()
	if err == nil {
		if form.Editing() {
			_, err = s.svc.Update(ctx, form.ID, req)
		} else {
			_, err = s.svc.Create(ctx, req)
		}
	}
	if err != nil {
		msg, err := failure(err, msgStockSave)
		if err != nil {
			return nil, err
		}
		page, err := s.Load(ctx)
		if err != nil {
			return nil, err
		}
		page.Form = &form
		page.FormError = msg
		return page, nil
	}
	return nil, nil
}

// Delete borra el item. Como Save, con éxito devuelve nil; con error recarga la
// lista con el mensaje.
func (s *StockScreen) Delete(ctx context.Context, id int64) (*StockPage, error) {
	delErr := s.svc.Delete(ctx, id)
	if delErr == nil {
		return nil, nil
	}
	msg, err := failure(delErr, msgStockDelete)
	if err != nil {
		return nil, err
	}
	page, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	page.ActionError = msg
	return page, nil
}
