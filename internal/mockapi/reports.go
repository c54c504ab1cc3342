package mockapi

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

const topN = 5

// GeneralReport resumen de la operación; la receita mensal es la del mes en curso
// sin ventas canceladas.
func (s *Store) GeneralReport() entity.GeneralReport {
	sales := s.ListSales(SaleQuery{})
	deliveries := s.listDeliveries("")
	now := s.now()

	rep := entity.GeneralReport{
		TotalSales:         len(sales),
		TotalDeliveries:    len(deliveries),
		StockItems:         len(s.ListStock()),
		MonthlyRevenue:     decimal.Zero,
		DeliveriesByStatus: map[string]int{},
	}
	for _, u := range s.listUsers() {
		if u.Active {
			rep.ActiveUsers++
		}
	}
	for _, v := range sales {
		if v.Status != entity.SaleStatusCanceled && v.Date.Year() == now.Year() && v.Date.Month() == now.Month() {
			rep.MonthlyRevenue = rep.MonthlyRevenue.Add(v.Total)
		}
	}
	for _, d := range deliveries {
		rep.DeliveriesByStatus[d.Status]++
	}
	rep.TopProducts = topProducts(sales)
	return rep
}

// SalesReport ventas del período (YYYY-MM) o de todos si period está vacío.
func (s *Store) SalesReport(period string, sellerID int64) (entity.SalesReport, error) {
	q := SaleQuery{SellerID: sellerID}
	if period != "" {
		start, err := time.ParseInLocation("2006-01", period, time.Local)
		if err != nil {
			return entity.SalesReport{}, fmt.Errorf("período inválido: %w", err)
		}
		q.From = start
		q.To = start.AddDate(0, 1, -1)
	}
	sales := s.ListSales(q)

	byDay := map[string]*entity.PeriodSales{}
	byMonth := map[string]decimal.Decimal{}
	bySeller := map[string]*entity.SellerSales{}
	for _, v := range sales {
		if v.Status == entity.SaleStatusCanceled {
			continue
		}
		day := v.Date.Format("2006-01-02")
		ps, ok := byDay[day]
		if !ok {
			ps = &entity.PeriodSales{Date: day, Revenue: decimal.Zero}
			byDay[day] = ps
		}
		ps.Quantity++
		ps.Revenue = ps.Revenue.Add(v.Total)

		month := v.Date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(v.Total)

		ss, ok := bySeller[v.Seller.Name]
		if !ok {
			ss = &entity.SellerSales{Seller: v.Seller.Name, Revenue: decimal.Zero}
			bySeller[v.Seller.Name] = ss
		}
		ss.Sales++
		ss.Revenue = ss.Revenue.Add(v.Total)
	}

	rep := entity.SalesReport{
		SalesByPeriod:  []entity.PeriodSales{},
		TopSellers:     []entity.SellerSales{},
		RevenueByMonth: []entity.MonthlyRevenue{},
		TopProducts:    topProducts(sales),
	}
	for _, ps := range byDay {
		rep.SalesByPeriod = append(rep.SalesByPeriod, *ps)
	}
	sort.Slice(rep.SalesByPeriod, func(i, j int) bool { return rep.SalesByPeriod[i].Date < rep.SalesByPeriod[j].Date })
	for m, r := range byMonth {
		rep.RevenueByMonth = append(rep.RevenueByMonth, entity.MonthlyRevenue{Month: m, Revenue: r})
	}
	sort.Slice(rep.RevenueByMonth, func(i, j int) bool { return rep.RevenueByMonth[i].Month < rep.RevenueByMonth[j].Month })
	for _, ss := range bySeller {
		rep.TopSellers = append(rep.TopSellers, *ss)
	}
	sort.Slice(rep.TopSellers, func(i, j int) bool {
		if !rep.TopSellers[i].Revenue.Equal(rep.TopSellers[j].Revenue) {
			return rep.TopSellers[i].Revenue.GreaterThan(rep.TopSellers[j].Revenue)
		}
		return rep.TopSellers[i].Seller < rep.TopSellers[j].Seller
	})
	if len(rep.TopSellers) > topN {
		rep.TopSellers = rep.TopSellers[:topN]
	}
	return rep, nil
}

// DeliveriesReport entregas filtradas por status (vacío = todas).
func (s *Store) DeliveriesReport(status string) entity.DeliveriesReport {
	deliveries := s.listDeliveries(status)
	rep := entity.DeliveriesReport{
		ByStatus:    map[string]int{},
		AverageTime: averageTime(deliveries),
		ByRegion:    []entity.RegionDelivery{},
		TopDrivers:  []entity.DriverRanking{},
	}

	regions := map[string][]Delivery{}
	drivers := map[string][]Delivery{}
	for _, d := range deliveries {
		rep.ByStatus[d.Status]++
		regions[d.Region] = append(regions[d.Region], d)
		drivers[d.Driver] = append(drivers[d.Driver], d)
	}
	for region, ds := range regions {
		rep.ByRegion = append(rep.ByRegion, entity.RegionDelivery{Region: region, Quantity: len(ds), AverageTime: averageTime(ds)})
	}
	sort.Slice(rep.ByRegion, func(i, j int) bool { return rep.ByRegion[i].Region < rep.ByRegion[j].Region })

	for driver, ds := range drivers {
		sum := decimal.Zero
		for _, d := range ds {
			sum = sum.Add(d.Rating)
		}
		rating := sum.Div(decimal.NewFromInt(int64(len(ds)))).Round(1)
		rep.TopDrivers = append(rep.TopDrivers, entity.DriverRanking{Driver: driver, Deliveries: len(ds), Rating: rating})
	}
	sort.Slice(rep.TopDrivers, func(i, j int) bool {
		if rep.TopDrivers[i].Deliveries != rep.TopDrivers[j].Deliveries {
			return rep.TopDrivers[i].Deliveries > rep.TopDrivers[j].Deliveries
		}
		return rep.TopDrivers[i].Driver < rep.TopDrivers[j].Driver
	})
	if len(rep.TopDrivers) > topN {
		rep.TopDrivers = rep.TopDrivers[:topN]
	}
	return rep
}

// UsersReport totales por cargo y los últimos cadastros.
func (s *Store) UsersReport() entity.UsersReport {
	users := s.listUsers()
	rep := entity.UsersReport{TotalUsers: len(users), ByRole: map[string]int{}, RecentUsers: []entity.RecentUser{}}
	for _, u := range users {
		if u.Active {
			rep.ActiveUsers++
		}
		rep.ByRole[u.Cargo]++
	}
	sort.SliceStable(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	for i, u := range users {
		if i == topN {
			break
		}
		rep.RecentUsers = append(rep.RecentUsers, entity.RecentUser{
			Name: u.Nome, Role: u.Cargo, RegisteredAt: u.CreatedAt.Format("2006-01-02"),
		})
	}
	return rep
}

func topProducts(sales []entity.Sale) []entity.ProductSales {
	agg := map[string]*entity.ProductSales{}
	for _, v := range sales {
		if v.Status == entity.SaleStatusCanceled {
			continue
		}
		for _, it := range v.Items {
			p, ok := agg[it.StockItem.Product]
			if !ok {
				p = &entity.ProductSales{Product: it.StockItem.Product, Quantity: decimal.Zero, Revenue: decimal.Zero}
				agg[it.StockItem.Product] = p
			}
			p.Quantity = p.Quantity.Add(it.Quantity)
			p.Revenue = p.Revenue.Add(it.Subtotal)
		}
	}
	out := make([]entity.ProductSales, 0, len(agg))
	for _, p := range agg {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Quantity.Equal(out[j].Quantity) {
			return out[i].Quantity.GreaterThan(out[j].Quantity)
		}
		return out[i].Product < out[j].Product
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// averageTime "2h 30min"; "-" si no hay entregas.
func averageTime(ds []Delivery) string {
	if len(ds) == 0 {
		return "-"
	}
	var total time.Duration
	for _, d := range ds {
		total += d.Duration
	}
	avg := (total / time.Duration(len(ds))).Round(time.Minute)
	h := int(avg.Hours())
	m := int(avg.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dmin", m)
	}
	return fmt.Sprintf("%dh %02dmin", h, m)
}
