package screens

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// Pestañas de Movimentação.
const (
	TabEntry   = "entrada"
	TabExit    = "saida"
	TabHistory = "historico"
	TabReport  = "relatorio"
)

const (
	msgMovementLoad     = "Erro ao carregar dados"
	msgMovementRegister = "Erro ao registrar movimentação"
	msgStockReportLoad  = "Erro ao carregar relatório de estoque"
)

// MovementQuery pestaña activa y filtros del historial (?aba=&estoqueId=&tipo=&dataInicio=&dataFim=).
type MovementQuery struct {
	Tab         string `query:"aba"`
	StockItemID int64  `query:"estoqueId"`
	Type        string `query:"tipo"`
	From        string `query:"dataInicio"`
	To          string `query:"dataFim"`
}

// Normalize fija la pestaña por defecto y descarta un tipo desconocido.
func (q MovementQuery) Normalize() MovementQuery {
	switch q.Tab {
	case TabEntry, TabExit, TabHistory, TabReport:
	default:
		q.Tab = TabEntry
	}
	if q.Type != "" && !entity.IsMovementType(q.Type) {
		q.Type = ""
	}
	return q
}

// Filter solo la pestaña Histórico filtra en la API; las demás piden la lista completa.
func (q MovementQuery) Filter() dto.MovementFilter {
	if q.Tab != TabHistory {
		return dto.MovementFilter{}
	}
	return dto.MovementFilter{StockItemID: q.StockItemID, Type: q.Type, From: q.From, To: q.To}
}

// MovementPage estado de Movimentação de Estoque. Form queda abierto con los
// valores enviados cuando el registro falló.
type MovementPage struct {
	Query     MovementQuery
	Items     View[[]entity.StockItem]
	Movements View[[]entity.Movement]
	Report    View[*entity.StockReport]
	Reasons   []string
	Form      *MovementForm
	FormError string
	Notice    string
}

// Visible movimientos de la pestaña activa: Entradas y Saídas filtran por tipo.
func (p *MovementPage) Visible() []entity.Movement {
	var want string
	switch p.Query.Tab {
	case TabEntry:
		want = entity.MovementEntry
	case TabExit:
		want = entity.MovementExit
	default:
		return p.Movements.Data
	}
	out := make([]entity.Movement, 0, len(p.Movements.Data))
	for _, m := range p.Movements.Data {
		if m.Type == want {
			out = append(out, m)
		}
	}
	return out
}

// MovementScreen casos de uso de Movimentação de Estoque.
type MovementScreen struct {
	stock     StockService
	movements MovementService
}

// NewMovementScreen construye la pantalla.
func NewMovementScreen(stock StockService, movements MovementService) *MovementScreen {
	return &MovementScreen{stock: stock, movements: movements}
}

// Load pide en paralelo la lista de items (para el selector) y los movimientos; la
// pestaña Relatório pide además el relatório de estoque, después.
func (s *MovementScreen) Load(ctx context.Context, q MovementQuery) (*MovementPage, error) {
	q = q.Normalize()
	page := &MovementPage{Query: q, Reasons: entity.MovementReasons}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return page.Items.Load(gctx, msgMovementLoad, s.stock.List)
	})
	g.Go(func() error {
		return page.Movements.Load(gctx, msgMovementLoad, func(ctx context.Context) ([]entity.Movement, error) {
			return s.movements.List(ctx, q.Filter())
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if q.Tab == TabReport {
		if err := page.Report.Load(ctx, msgStockReportLoad, s.movements.StockReport); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// Register registra una entrada o salida según form.Type. Con éxito devuelve nil
// (el handler redirige); con error recarga la página y deja el formulario abierto
// con lo enviado.
func (s *MovementScreen) Register(ctx context.Context, q MovementQuery, form MovementForm) (*MovementPage, error) {
	req, err := form.Request()
	if err == nil {
		if form.Type == entity.MovementEntry {
			_, err = s.movements.RegisterEntry(ctx, req)
		} else {
			_, err = s.movements.RegisterExit(ctx, req)
		}
	}
	if err != nil {
		msg, err := failure(err, msgMovementRegister)
		if err != nil {
			return nil, err
		}
		page, err := s.Load(ctx, q)
		if err != nil {
			return nil, err
		}
		page.Form = &form
		page.FormError = msg
		return page, nil
	}
	return nil, nil
}
