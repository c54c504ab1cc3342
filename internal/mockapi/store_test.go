package mockapi

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

func fixedStore(at time.Time) *Store {
	s := NewStore()
	s.now = func() time.Time { return at }
	return s
}

func TestRegisterMovement_SalidaNoDejaSaldoNegativo(t *testing.T) {
	s := fixedStore(time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local))
	it := s.CreateStock(dto.StockItemRequest{Product: "Areia", Quantity: decimal.NewFromInt(3), Unit: "m3"})

	_, err := s.RegisterMovement(entity.MovementExit, dto.MovementRequest{StockItemID: it.ID, Quantity: decimal.NewFromInt(4), Reason: entity.ReasonSale}, 0)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	got, err := s.GetStock(it.ID)
	require.NoError(t, err)
	assert.Equal(t, "3", got.Quantity.String(), "el saldo no cambia si se rechaza")
	assert.Empty(t, s.ListMovements(MovementQuery{}))

	_, err = s.RegisterMovement(entity.MovementExit, dto.MovementRequest{StockItemID: it.ID, Quantity: decimal.NewFromInt(3), Reason: entity.ReasonSale}, 0)
	require.NoError(t, err)
	got, _ = s.GetStock(it.ID)
	assert.True(t, got.Quantity.IsZero())
}

func TestListMovements_FiltroDeFechasInclusivo(t *testing.T) {
	s := fixedStore(time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local))
	it := s.CreateStock(dto.StockItemRequest{Product: "Tijolo", Quantity: decimal.NewFromInt(100), Unit: "un"})
	entry := dto.MovementRequest{StockItemID: it.ID, Quantity: decimal.NewFromInt(1), Reason: entity.ReasonPurchase}

	for _, day := range []int{1, 15, 31} {
		s.now = func() time.Time { return time.Date(2024, 3, day, 23, 30, 0, 0, time.Local) }
		_, err := s.RegisterMovement(entity.MovementEntry, entry, 0)
		require.NoError(t, err)
	}

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local)
	got := s.ListMovements(MovementQuery{From: from, To: to})
	require.Len(t, got, 2)
	assert.Equal(t, 31, got[0].Date.Day())
	assert.Equal(t, 15, got[1].Date.Day())
}

func TestSalesReport_AgrupaYExcluyeCanceladas(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.Local)
	s := fixedStore(now)
	seller, err := s.AddUser("vd1", "x", "Carla", "Vendedor", true)
	require.NoError(t, err)
	cement := s.CreateStock(dto.StockItemRequest{Product: "Cimento", Quantity: decimal.NewFromInt(100), Unit: "saco"})

	mk := func(qty int64, status string, at time.Time) {
		sale, err := s.CreateSale(dto.SaleRequest{Items: []dto.SaleItemRequest{
			{StockItemID: cement.ID, Quantity: decimal.NewFromInt(qty), UnitPrice: decimal.NewFromInt(10)},
		}}, seller.ID)
		require.NoError(t, err)
		_, err = s.UpdateSaleStatus(sale.ID, status)
		require.NoError(t, err)
		s.backdateSale(sale.ID, at)
	}
	mk(2, entity.SaleStatusApproved, now)
	mk(3, entity.SaleStatusPending, now)
	mk(50, entity.SaleStatusCanceled, now)
	mk(1, entity.SaleStatusApproved, now.AddDate(0, -1, 0))

	rep, err := s.SalesReport("2024-03", 0)
	require.NoError(t, err)
	require.Len(t, rep.SalesByPeriod, 1)
	assert.Equal(t, "2024-03-20", rep.SalesByPeriod[0].Date)
	assert.Equal(t, 2, rep.SalesByPeriod[0].Quantity)
	assert.Equal(t, "50", rep.SalesByPeriod[0].Revenue.String())
	require.Len(t, rep.TopProducts, 1)
	assert.Equal(t, "5", rep.TopProducts[0].Quantity.String())
	require.Len(t, rep.TopSellers, 1)
	assert.Equal(t, "Carla", rep.TopSellers[0].Seller)

	all, err := s.SalesReport("", 0)
	require.NoError(t, err)
	assert.Len(t, all.RevenueByMonth, 2)
	assert.Equal(t, "2024-02", all.RevenueByMonth[0].Month)

	general := s.GeneralReport()
	assert.Equal(t, 4, general.TotalSales)
	assert.Equal(t, "50", general.MonthlyRevenue.String())

	_, err = s.SalesReport("marzo", 0)
	assert.Error(t, err)
}

func TestDeliveriesReport(t *testing.T) {
	s := fixedStore(time.Now())
	s.AddDelivery(Delivery{Status: entity.DeliveryDelivered, Region: "Centro", Driver: "Diego", Duration: 90 * time.Minute, Rating: decimal.NewFromInt(5)})
	s.AddDelivery(Delivery{Status: entity.DeliveryDelivered, Region: "Centro", Driver: "Diego", Duration: 30 * time.Minute, Rating: decimal.NewFromInt(4)})
	s.AddDelivery(Delivery{Status: entity.DeliveryPending, Region: "Sul", Driver: "Fábio", Duration: 20 * time.Minute, Rating: decimal.NewFromInt(3)})

	rep := s.DeliveriesReport(entity.DeliveryDelivered)
	assert.Equal(t, map[string]int{entity.DeliveryDelivered: 2}, rep.ByStatus)
	assert.Equal(t, "1h 00min", rep.AverageTime)
	require.Len(t, rep.TopDrivers, 1)
	assert.Equal(t, "4.5", rep.TopDrivers[0].Rating.String())

	all := s.DeliveriesReport("")
	assert.Len(t, all.ByRegion, 2)
	assert.Equal(t, "Centro", all.ByRegion[0].Region)
	assert.Equal(t, "20min", all.ByRegion[1].AverageTime)

	assert.Equal(t, "-", s.DeliveriesReport("em_transito").AverageTime)
}

func TestUsersReport(t *testing.T) {
	s := fixedStore(time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local))
	_, err := s.AddUser("a", "x", "Ana", "Administrador", true)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local) }
	_, err = s.AddUser("b", "x", "Bruno", "Operador", false)
	require.NoError(t, err)

	rep := s.UsersReport()
	assert.Equal(t, 2, rep.TotalUsers)
	assert.Equal(t, 1, rep.ActiveUsers)
	assert.Equal(t, map[string]int{"Administrador": 1, "Operador": 1}, rep.ByRole)
	require.Len(t, rep.RecentUsers, 2)
	assert.Equal(t, "Bruno", rep.RecentUsers[0].Name)
	assert.Equal(t, "2024-02-01", rep.RecentUsers[0].RegisteredAt)
}
