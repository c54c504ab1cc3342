package mockapi

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// SeedUser credenciales de desarrollo que crea Seed.
type SeedUser struct {
	Matricula string
	Senha     string
	Nome      string
	Cargo     string
	Active    bool
}

// DefaultUsers usuarios de Seed. El último está inactivo para probar el rechazo.
var DefaultUsers = []SeedUser{
	{Matricula: "admin", Senha: "admin123", Nome: "Ana Souza", Cargo: "Administrador", Active: true},
	{Matricula: "op001", Senha: "senha123", Nome: "Bruno Lima", Cargo: "Operador", Active: true},
	{Matricula: "vd001", Senha: "senha123", Nome: "Carla Mendes", Cargo: "Vendedor", Active: true},
	{Matricula: "mt001", Senha: "senha123", Nome: "Diego Rocha", Cargo: "Motorista", Active: true},
	{Matricula: "ex001", Senha: "senha123", Nome: "Eva Martins", Cargo: "Operador", Active: false},
}

// Seed carga usuarios, estoque, movimentos, ventas y entregas de ejemplo.
func Seed(s *Store) error {
	users := make([]*User, 0, len(DefaultUsers))
	for _, u := range DefaultUsers {
		created, err := s.AddUser(u.Matricula, u.Senha, u.Nome, u.Cargo, u.Active)
		if err != nil {
			return fmt.Errorf("seed: usuario %s: %w", u.Matricula, err)
		}
		users = append(users, created)
	}
	operator, seller := users[1], users[2]

	items := []dto.StockItemRequest{
		{Product: "Cimento CP-II 50kg", Quantity: decimal.NewFromInt(120), Unit: "saco", Location: "A1"},
		{Product: "Areia média", Quantity: decimal.RequireFromString("35.5"), Unit: "m3", Location: "Pátio"},
		{Product: "Vergalhão 10mm", Quantity: decimal.NewFromInt(400), Unit: "barra", Location: "B2"},
		{Product: "Tijolo cerâmico", Quantity: decimal.NewFromInt(5000), Unit: "unidade", Location: "Pátio"},
		{Product: "Tinta acrílica 18L", Quantity: decimal.Zero, Unit: "lata", Location: "C1"},
	}
	stock := make([]entity.StockItem, 0, len(items))
	for _, in := range items {
		stock = append(stock, s.CreateStock(in))
	}

	movs := []struct {
		kind string
		req  dto.MovementRequest
	}{
		{entity.MovementEntry, dto.MovementRequest{StockItemID: stock[0].ID, Quantity: decimal.NewFromInt(30), Reason: entity.ReasonPurchase}},
		{entity.MovementExit, dto.MovementRequest{StockItemID: stock[0].ID, Quantity: decimal.NewFromInt(10), Reason: entity.ReasonSale}},
		{entity.MovementExit, dto.MovementRequest{StockItemID: stock[2].ID, Quantity: decimal.NewFromInt(25), Reason: entity.ReasonTransfer, Note: "Obra Centro"}},
		{entity.MovementEntry, dto.MovementRequest{StockItemID: stock[3].ID, Quantity: decimal.NewFromInt(1000), Reason: entity.ReasonPurchase}},
	}
	for _, m := range movs {
		if _, err := s.RegisterMovement(m.kind, m.req, operator.ID); err != nil {
			return fmt.Errorf("seed: movimentação: %w", err)
		}
	}

	now := s.now()
	sales := []struct {
		daysAgo int
		status  string
		items   []dto.SaleItemRequest
	}{
		{1, entity.SaleStatusApproved, []dto.SaleItemRequest{
			{StockItemID: stock[0].ID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.RequireFromString("38.90")},
		}},
		{3, entity.SaleStatusPending, []dto.SaleItemRequest{
			{StockItemID: stock[2].ID, Quantity: decimal.NewFromInt(25), UnitPrice: decimal.RequireFromString("42.50")},
			{StockItemID: stock[3].ID, Quantity: decimal.NewFromInt(500), UnitPrice: decimal.RequireFromString("0.95")},
		}},
		{40, entity.SaleStatusApproved, []dto.SaleItemRequest{
			{StockItemID: stock[1].ID, Quantity: decimal.NewFromInt(4), UnitPrice: decimal.RequireFromString("120")},
		}},
		{45, entity.SaleStatusCanceled, []dto.SaleItemRequest{
			{StockItemID: stock[0].ID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("38.90")},
		}},
	}
	for _, v := range sales {
		sale, err := s.CreateSale(dto.SaleRequest{Items: v.items}, seller.ID)
		if err != nil {
			return fmt.Errorf("seed: venda: %w", err)
		}
		if _, err := s.UpdateSaleStatus(sale.ID, v.status); err != nil {
			return fmt.Errorf("seed: venda: %w", err)
		}
		s.backdateSale(sale.ID, now.AddDate(0, 0, -v.daysAgo))
	}

	deliveries := []Delivery{
		{Status: entity.DeliveryDelivered, Region: "Centro", Driver: "Diego Rocha", Duration: 95 * time.Minute, Rating: decimal.RequireFromString("4.8")},
		{Status: entity.DeliveryDelivered, Region: "Zona Norte", Driver: "Diego Rocha", Duration: 150 * time.Minute, Rating: decimal.RequireFromString("4.5")},
		{Status: entity.DeliveryInTransit, Region: "Zona Sul", Driver: "Fábio Nunes", Duration: 60 * time.Minute, Rating: decimal.RequireFromString("4.0")},
		{Status: entity.DeliveryPending, Region: "Centro", Driver: "Fábio Nunes", Duration: 0, Rating: decimal.Zero},
	}
	for i, d := range deliveries {
		d.Date = now.AddDate(0, 0, -i)
		s.AddDelivery(d)
	}
	return nil
}

func (s *Store) backdateSale(id int64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sales {
		if s.sales[i].ID == id {
			s.sales[i].Date = at
			return
		}
	}
}
