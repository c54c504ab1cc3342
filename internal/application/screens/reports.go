package screens

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
	"github.com/jhoicas/logistica-console/pkg/format"
)

// Pestañas de Relatórios.
const (
	TabGeneral    = "geral"
	TabSales      = "vendas"
	TabDeliveries = "entregas"
	TabUsers      = "usuarios"
)

const (
	msgGeneralLoad    = "Erro ao carregar relatório geral"
	msgSalesLoad      = "Erro ao carregar relatório de vendas"
	msgDeliveriesLoad = "Erro ao carregar relatório de entregas"
	msgUsersLoad      = "Erro ao carregar relatório de usuários"
	msgInvalidPeriod  = "Período inválido, use o formato AAAA-MM."
)

// ReportQuery pestaña activa y filtros (?aba=&periodo=&status=).
type ReportQuery struct {
	Tab    string `query:"aba"`
	Period string `query:"periodo"`
	Status string `query:"status"`
}

// Normalize fija la pestaña por defecto.
func (q ReportQuery) Normalize() ReportQuery {
	switch q.Tab {
	case TabGeneral, TabSales, TabDeliveries, TabUsers:
	default:
		q.Tab = TabGeneral
	}
	return q
}

// ReportsPage estado de Relatórios. Solo la pestaña activa tiene datos: cada cambio
// de pestaña o filtro vuelve a pedir su relatório.
type ReportsPage struct {
	Query      ReportQuery
	General    View[*entity.GeneralReport]
	Sales      View[*entity.SalesReport]
	Deliveries View[*entity.DeliveriesReport]
	Users      View[*entity.UsersReport]
	Statuses   []string
}

// ActiveError mensaje de la pestaña activa.
func (p *ReportsPage) ActiveError() string {
	switch p.Query.Tab {
	case TabSales:
		return p.Sales.Error
	case TabDeliveries:
		return p.Deliveries.Error
	case TabUsers:
		return p.Users.Error
	}
	return p.General.Error
}

// ReportsScreen casos de uso de Relatórios y su exportación.
type ReportsScreen struct {
	svc      ReportService
	renderer ReportRenderer
}

// NewReportsScreen construye la pantalla. renderer puede ser nil si no se exporta.
func NewReportsScreen(svc ReportService, renderer ReportRenderer) *ReportsScreen {
	return &ReportsScreen{svc: svc, renderer: renderer}
}

// Load pide el relatório de la pestaña activa con sus filtros.
func (s *ReportsScreen) Load(ctx context.Context, q ReportQuery) (*ReportsPage, error) {
	q = q.Normalize()
	page := &ReportsPage{Query: q, Statuses: entity.DeliveryStatuses}

	var err error
	switch q.Tab {
	case TabGeneral:
		err = page.General.Load(ctx, msgGeneralLoad, s.svc.General)
	case TabSales:
		if q.Period != "" && !validPeriod(q.Period) {
			page.Sales.Loaded = true
			page.Sales.Error = msgInvalidPeriod
			return page, nil
		}
		err = page.Sales.Load(ctx, msgSalesLoad, func(ctx context.Context) (*entity.SalesReport, error) {
			return s.svc.Sales(ctx, dto.SalesReportFilter{Period: q.Period})
		})
	case TabDeliveries:
		err = page.Deliveries.Load(ctx, msgDeliveriesLoad, func(ctx context.Context) (*entity.DeliveriesReport, error) {
			return s.svc.Deliveries(ctx, dto.DeliveriesReportFilter{Status: q.Status})
		})
	case TabUsers:
		err = page.Users.Load(ctx, msgUsersLoad, s.svc.Users)
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Export carga la pestaña activa y la renderiza. Devuelve también el nombre de archivo.
func (s *ReportsScreen) Export(ctx context.Context, q ReportQuery) ([]byte, string, error) {
	if s.renderer == nil {
		return nil, "", fmt.Errorf("relatórios: exportación no configurada")
	}
	page, err := s.Load(ctx, q)
	if err != nil {
		return nil, "", err
	}
	if msg := page.ActiveError(); msg != "" {
		return nil, "", &ValidationError{Msg: msg}
	}
	doc, ok := page.Document()
	if !ok {
		return nil, "", fmt.Errorf("relatórios: sin datos para %s: %w", page.Query.Tab, domain.ErrNotFound)
	}
	out, err := s.renderer.RenderReport(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	return out, "relatorio-" + page.Query.Tab + ".pdf", nil
}

func validPeriod(p string) bool {
	_, err := time.Parse("2006-01", p)
	return err == nil
}

// ── Versión tabular para exportar ─────────────────────────────────────────────

// Document arma la versión tabular de la pestaña activa; false si no hay datos.
func (p *ReportsPage) Document() (dto.ReportDocument, bool) {
	switch p.Query.Tab {
	case TabSales:
		if p.Sales.Data == nil {
			return dto.ReportDocument{}, false
		}
		return salesDocument(p.Sales.Data, p.Query.Period), true
	case TabDeliveries:
		if p.Deliveries.Data == nil {
			return dto.ReportDocument{}, false
		}
		return deliveriesDocument(p.Deliveries.Data, p.Query.Status), true
	case TabUsers:
		if p.Users.Data == nil {
			return dto.ReportDocument{}, false
		}
		return usersDocument(p.Users.Data), true
	}
	if p.General.Data == nil {
		return dto.ReportDocument{}, false
	}
	return generalDocument(p.General.Data), true
}

func generalDocument(r *entity.GeneralReport) dto.ReportDocument {
	return dto.ReportDocument{
		Title:    "Relatório Geral",
		Subtitle: "Resumo da operação",
		Metrics: []dto.ReportMetric{
			{Label: "Total de vendas", Value: format.Int(r.TotalSales)},
			{Label: "Total de entregas", Value: format.Int(r.TotalDeliveries)},
			{Label: "Itens em estoque", Value: format.Int(r.StockItems)},
			{Label: "Usuários ativos", Value: format.Int(r.ActiveUsers)},
			{Label: "Receita mensal", Value: format.Money(r.MonthlyRevenue)},
		},
		Tables: []dto.ReportTable{
			productsTable(r.TopProducts),
			countTable("Entregas por status", "Status", r.DeliveriesByStatus),
		},
	}
}

func salesDocument(r *entity.SalesReport, period string) dto.ReportDocument {
	subtitle := "Todos os períodos"
	if period != "" {
		subtitle = "Período " + period
	}
	byPeriod := dto.ReportTable{Title: "Vendas por período", Headers: []string{"Data", "Vendas", "Receita"}}
	for _, v := range r.SalesByPeriod {
		byPeriod.Rows = append(byPeriod.Rows, []string{v.Date, format.Int(v.Quantity), format.Money(v.Revenue)})
	}
	sellers := dto.ReportTable{Title: "Vendedores top", Headers: []string{"Vendedor", "Vendas", "Receita"}}
	for _, v := range r.TopSellers {
		sellers.Rows = append(sellers.Rows, []string{v.Seller, format.Int(v.Sales), format.Money(v.Revenue)})
	}
	monthly := dto.ReportTable{Title: "Receita por mês", Headers: []string{"Mês", "Receita"}}
	for _, m := range r.RevenueByMonth {
		monthly.Rows = append(monthly.Rows, []string{m.Month, format.Money(m.Revenue)})
	}
	return dto.ReportDocument{
		Title:    "Relatório de Vendas",
		Subtitle: subtitle,
		Tables:   []dto.ReportTable{byPeriod, productsTable(r.TopProducts), sellers, monthly},
	}
}

func deliveriesDocument(r *entity.DeliveriesReport, status string) dto.ReportDocument {
	subtitle := "Todos os status"
	if status != "" {
		subtitle = "Status " + status
	}
	regions := dto.ReportTable{Title: "Entregas por região", Headers: []string{"Região", "Entregas", "Tempo médio"}}
	for _, g := range r.ByRegion {
		regions.Rows = append(regions.Rows, []string{g.Region, format.Int(g.Quantity), g.AverageTime})
	}
	drivers := dto.ReportTable{Title: "Motoristas top", Headers: []string{"Motorista", "Entregas", "Avaliação"}}
	for _, d := range r.TopDrivers {
		drivers.Rows = append(drivers.Rows, []string{d.Driver, format.Int(d.Deliveries), format.Number(d.Rating)})
	}
	return dto.ReportDocument{
		Title:    "Relatório de Entregas",
		Subtitle: subtitle,
		Metrics:  []dto.ReportMetric{{Label: "Tempo médio de entrega", Value: r.AverageTime}},
		Tables: []dto.ReportTable{
			countTable("Entregas por status", "Status", r.ByStatus),
			regions,
			drivers,
		},
	}
}

func usersDocument(r *entity.UsersReport) dto.ReportDocument {
	recent := dto.ReportTable{Title: "Usuários recentes", Headers: []string{"Nome", "Cargo", "Cadastro"}}
	for _, u := range r.RecentUsers {
		recent.Rows = append(recent.Rows, []string{u.Name, u.Role, u.RegisteredAt})
	}
	return dto.ReportDocument{
		Title:    "Relatório de Usuários",
		Subtitle: "Equipe cadastrada",
		Metrics: []dto.ReportMetric{
			{Label: "Total de usuários", Value: format.Int(r.TotalUsers)},
			{Label: "Usuários ativos", Value: format.Int(r.ActiveUsers)},
		},
		Tables: []dto.ReportTable{countTable("Usuários por cargo", "Cargo", r.ByRole), recent},
	}
}

func productsTable(products []entity.ProductSales) dto.ReportTable {
	t := dto.ReportTable{Title: "Produtos mais vendidos", Headers: []string{"Produto", "Quantidade", "Receita"}}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{p.Product, format.Number(p.Quantity), format.Money(p.Revenue)})
	}
	return t
}

// countTable tabla de dos columnas a partir de un mapa, ordenada por clave.
func countTable(title, keyHeader string, counts map[string]int) dto.ReportTable {
	t := dto.ReportTable{Title: title, Headers: []string{keyHeader, "Quantidade"}}
	for _, k := range SortedKeys(counts) {
		t.Rows = append(t.Rows, []string{k, format.Int(counts[k])})
	}
	return t
}

// SortedKeys claves de un mapa de conteos en orden estable (las vistas también lo usan).
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
