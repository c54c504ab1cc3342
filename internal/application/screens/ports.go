// Package screens orquesta las pantallas de la consola: qué se carga, en qué orden,
// qué se valida antes de enviar y qué mensaje se muestra ante un fallo.
//
// Todas las pantallas siguen el mismo esquema: cargar al entrar, enviar mutaciones
// de a una, y tras un éxito recargar completas las listas afectadas. Un 401 nunca se
// muestra como mensaje: domain.ErrUnauthorized se propaga para que la capa HTTP
// redirija a /login.
package screens

import (
	"context"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// StockService operaciones sobre /estoque.
type StockService interface {
	List(ctx context.Context) ([]entity.StockItem, error)
	Create(ctx context.Context, in dto.StockItemRequest) (*entity.StockItem, error)
	Update(ctx context.Context, id int64, in dto.StockItemRequest) (*entity.StockItem, error)
	Delete(ctx context.Context, id int64) error
}

// MovementService operaciones sobre /movimentacao.
type MovementService interface {
	RegisterEntry(ctx context.Context, in dto.MovementRequest) (*entity.Movement, error)
	RegisterExit(ctx context.Context, in dto.MovementRequest) (*entity.Movement, error)
	List(ctx context.Context, f dto.MovementFilter) ([]entity.Movement, error)
	StockReport(ctx context.Context) (*entity.StockReport, error)
}

// SalesService operaciones sobre /vendas.
type SalesService interface {
	List(ctx context.Context, f dto.SaleFilter) ([]entity.Sale, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Sale, error)
}

// ReportService /relatorios.
type ReportService interface {
	General(ctx context.Context) (*entity.GeneralReport, error)
	Sales(ctx context.Context, f dto.SalesReportFilter) (*entity.SalesReport, error)
	Deliveries(ctx context.Context, f dto.DeliveriesReportFilter) (*entity.DeliveriesReport, error)
	Users(ctx context.Context) (*entity.UsersReport, error)
}

// ReportRenderer exporta un relatório ya tabulado (PDF).
type ReportRenderer interface {
	RenderReport(ctx context.Context, doc dto.ReportDocument) ([]byte, error)
}
