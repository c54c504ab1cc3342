package entity

import "github.com/shopspring/decimal"

// Los relatórios son modelos de solo lectura: se piden de nuevo en cada cambio de
// pestaña o filtro y nunca se combinan entre filtros.

// GeneralReport GET /relatorios/geral.
type GeneralReport struct {
	TotalSales         int             `json:"totalVendas"`
	TotalDeliveries    int             `json:"totalEntregas"`
	StockItems         int             `json:"itensEstoque"`
	ActiveUsers        int             `json:"usuariosAtivos"`
	MonthlyRevenue     decimal.Decimal `json:"receitaMensal"`
	TopProducts        []ProductSales  `json:"produtosMaisVendidos"`
	DeliveriesByStatus map[string]int  `json:"entregasPorStatus"`
}

// ProductSales producto con su volumen e ingreso.
type ProductSales struct {
	Product  string          `json:"produto"`
	Quantity decimal.Decimal `json:"quantidade"`
	Revenue  decimal.Decimal `json:"receita"`
}

// SalesReport GET /relatorios/vendas.
type SalesReport struct {
	SalesByPeriod  []PeriodSales    `json:"vendasPorPeriodo"`
	TopProducts    []ProductSales   `json:"produtosMaisVendidos"`
	TopSellers     []SellerSales    `json:"vendedoresTop"`
	RevenueByMonth []MonthlyRevenue `json:"receitaPorMes"`
}

// PeriodSales ventas de un día.
type PeriodSales struct {
	Date     string          `json:"data"`
	Quantity int             `json:"quantidade"`
	Revenue  decimal.Decimal `json:"receita"`
}

// SellerSales ranking de vendedores.
type SellerSales struct {
	Seller  string          `json:"vendedor"`
	Sales   int             `json:"vendas"`
	Revenue decimal.Decimal `json:"receita"`
}

// MonthlyRevenue ingreso de un mes (YYYY-MM).
type MonthlyRevenue struct {
	Month   string          `json:"mes"`
	Revenue decimal.Decimal `json:"receita"`
}

// DeliveriesReport GET /relatorios/entregas.
type DeliveriesReport struct {
	ByStatus    map[string]int   `json:"entregasPorStatus"`
	AverageTime string           `json:"tempoMedioEntrega"`
	ByRegion    []RegionDelivery `json:"entregasPorRegiao"`
	TopDrivers  []DriverRanking  `json:"motoristasTop"`
}

// RegionDelivery entregas por región.
type RegionDelivery struct {
	Region      string `json:"regiao"`
	Quantity    int    `json:"quantidade"`
	AverageTime string `json:"tempoMedio"`
}

// DriverRanking ranking de motoristas.
type DriverRanking struct {
	Driver     string          `json:"motorista"`
	Deliveries int             `json:"entregas"`
	Rating     decimal.Decimal `json:"avaliacao"`
}

// UsersReport GET /relatorios/usuarios.
type UsersReport struct {
	TotalUsers  int            `json:"totalUsuarios"`
	ActiveUsers int            `json:"usuariosAtivos"`
	ByRole      map[string]int `json:"usuariosPorCargo"`
	RecentUsers []RecentUser   `json:"usuariosRecentes"`
}

// RecentUser usuario dado de alta recientemente.
type RecentUser struct {
	Name         string `json:"nome"`
	Role         string `json:"cargo"`
	RegisteredAt string `json:"dataCadastro"`
}

// Estados de entrega usados como filtro en /relatorios/entregas.
const (
	DeliveryPending   = "pendente"
	DeliveryInTransit = "em_transito"
	DeliveryDelivered = "entregue"
)

// DeliveryStatuses en el orden del filtro.
var DeliveryStatuses = []string{DeliveryPending, DeliveryInTransit, DeliveryDelivered}
