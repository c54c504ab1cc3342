// Package mockapi es una implementación en memoria de la API REST de logística para
// desarrollo local y para los tests de la consola. Respeta el mismo contrato:
// envolturas {success, message, <recurso>}, tokens HS256 y 401 ante un bearer que no
// acepta. A diferencia de la consola, valida la suficiencia de estoque en las salidas.
package mockapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// Errores propios del mock.
var (
	ErrInvalidCredentials = errors.New("matrícula ou senha inválidos")
	ErrInactiveUser       = errors.New("usuário inativo")
	ErrInsufficientStock  = errors.New("quantidade insuficiente em estoque")
)

// User usuario de la API. El hash es bcrypt.
type User struct {
	ID           int64
	Matricula    string
	Nome         string
	Cargo        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}

// Delivery entrega; solo alimenta los relatórios.
type Delivery struct {
	ID       int64
	Status   string
	Region   string
	Driver   string
	Duration time.Duration
	Rating   decimal.Decimal
	Date     time.Time
}

// Store estado en memoria protegido por un RWMutex.
type Store struct {
	mu         sync.RWMutex
	now        func() time.Time
	users      []User
	items      map[int64]*entity.StockItem
	movements  []entity.Movement
	sales      []entity.Sale
	deliveries []Delivery
	seq        map[string]int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{now: time.Now, items: map[int64]*entity.StockItem{}, seq: map[string]int64{}}
}

// next devuelve el siguiente ID de table; cada tabla numera desde 1.
func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// AddUser registra un usuario con la contraseña en claro (se guarda el hash bcrypt).
func (s *Store) AddUser(matricula, senha, nome, cargo string, active bool) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := User{
		ID:           s.next("usuarios"),
		Matricula:    matricula,
		Nome:         nome,
		Cargo:        cargo,
		PasswordHash: string(hash),
		Active:       active,
		CreatedAt:    s.now(),
	}
	s.users = append(s.users, u)
	return &u, nil
}

// Authenticate verifica matrícula y senha.
func (s *Store) Authenticate(matricula, senha string) (*User, error) {
	s.mu.RLock()
	var found *User
	for i := range s.users {
		if s.users[i].Matricula == matricula {
			u := s.users[i]
			found = &u
			break
		}
	}
	s.mu.RUnlock()
	if found == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(senha)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !found.Active {
		return nil, ErrInactiveUser
	}
	return found, nil
}

func (s *Store) userByID(id int64) (User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// ── Estoque ───────────────────────────────────────────────────────────────────

// ListStock items ordenados por id.
func (s *Store) ListStock() []entity.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.StockItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetStock(id int64) (*entity.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (s *Store) CreateStock(in dto.StockItemRequest) entity.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	it := &entity.StockItem{
		ID:        s.next("estoque"),
		Product:   in.Product,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.items[it.ID] = it
	return *it
}

func (s *Store) UpdateStock(id int64, in dto.StockItemRequest) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	it.Product = in.Product
	it.Quantity = in.Quantity
	it.Unit = in.Unit
	it.Location = in.Location
	it.UpdatedAt = s.now()
	cp := *it
	return &cp, nil
}

func (s *Store) DeleteStock(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// ── Movimentação ──────────────────────────────────────────────────────────────

// RegisterMovement aplica una entrada o salida sobre el item y la registra.
// Una salida mayor que el saldo devuelve ErrInsufficientStock sin modificar nada.
func (s *Store) RegisterMovement(kind string, in dto.MovementRequest, responsibleID int64) (*entity.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[in.StockItemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	switch kind {
	case entity.MovementEntry:
		it.Quantity = it.Quantity.Add(in.Quantity)
	case entity.MovementExit:
		if it.Quantity.LessThan(in.Quantity) {
			return nil, ErrInsufficientStock
		}
		it.Quantity = it.Quantity.Sub(in.Quantity)
	default:
		return nil, domain.ErrInvalidInput
	}
	now := s.now()
	it.UpdatedAt = now

	responsible := entity.Responsible{ID: responsibleID}
	if u, ok := s.userByID(responsibleID); ok {
		responsible.Matricula = u.Matricula
	}
	m := entity.Movement{
		ID:            s.next("movimentacao"),
		StockItemID:   it.ID,
		Type:          kind,
		Quantity:      in.Quantity,
		Reason:        in.Reason,
		Note:          in.Note,
		ResponsibleID: responsibleID,
		Date:          now,
		StockItem: entity.MovementItem{
			ID: it.ID, Product: it.Product, Quantity: it.Quantity, Unit: it.Unit, Location: it.Location,
		},
		Responsible: responsible,
	}
	s.movements = append(s.movements, m)
	return &m, nil
}

// MovementQuery filtros de ListMovements; las fechas son días completos (inclusive).
type MovementQuery struct {
	StockItemID int64
	Type        string
	From        time.Time
	To          time.Time
}

// ListMovements más recientes primero.
func (s *Store) ListMovements(q MovementQuery) []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Movement, 0, len(s.movements))
	for _, m := range s.movements {
		if q.StockItemID > 0 && m.StockItemID != q.StockItemID {
			continue
		}
		if q.Type != "" && m.Type != q.Type {
			continue
		}
		if !q.From.IsZero() && m.Date.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && !m.Date.Before(q.To.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (s *Store) GetMovement(id int64) (*entity.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.movements {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// StockReport totales e historial por item.
func (s *Store) StockReport() entity.StockReport {
	items := s.ListStock()
	movs := s.ListMovements(MovementQuery{})
	rep := entity.StockReport{TotalItems: len(items), Items: make([]entity.StockReportItem, 0, len(items))}
	for _, it := range items {
		if it.InStock() {
			rep.ItemsInStock++
		} else {
			rep.ItemsOutOfStock++
		}
		ri := entity.StockReportItem{
			ID: it.ID, Product: it.Product, Quantity: it.Quantity, Unit: it.Unit, Location: it.Location,
			Movements: []entity.Movement{},
		}
		for _, m := range movs {
			if m.StockItemID == it.ID {
				ri.Movements = append(ri.Movements, m)
			}
		}
		rep.Items = append(rep.Items, ri)
	}
	return rep
}

// ── Vendas ────────────────────────────────────────────────────────────────────

// CreateSale registra una venta pendente; el total es la suma de los subtotales.
func (s *Store) CreateSale(in dto.SaleRequest, sellerID int64) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	seller, _ := s.userByID(sellerID)
	sale := entity.Sale{
		ID:         s.next("vendas"),
		CustomerID: in.CustomerID,
		SellerID:   sellerID,
		Date:       s.now(),
		Total:      decimal.Zero,
		Status:     entity.SaleStatusPending,
		Note:       in.Note,
		Seller:     entity.SaleSeller{ID: seller.ID, Name: seller.Nome, Matricula: seller.Matricula},
	}
	for _, li := range in.Items {
		it, ok := s.items[li.StockItemID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		sub := li.Quantity.Mul(li.UnitPrice)
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:          s.next("itens_venda"),
			SaleID:      sale.ID,
			StockItemID: it.ID,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Subtotal:    sub,
			StockItem:   entity.SaleItemStock{ID: it.ID, Product: it.Product, Unit: it.Unit},
		})
		sale.Total = sale.Total.Add(sub)
	}
	s.sales = append(s.sales, sale)
	return &sale, nil
}

// SaleQuery filtros de ListSales.
type SaleQuery struct {
	From       time.Time
	To         time.Time
	Status     string
	SellerID   int64
	CustomerID int64
}

// ListSales más recientes primero.
func (s *Store) ListSales(q SaleQuery) []entity.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Sale, 0, len(s.sales))
	for _, v := range s.sales {
		if q.Status != "" && v.Status != q.Status {
			continue
		}
		if q.SellerID > 0 && v.SellerID != q.SellerID {
			continue
		}
		if q.CustomerID > 0 && (v.CustomerID == nil || *v.CustomerID != q.CustomerID) {
			continue
		}
		if !q.From.IsZero() && v.Date.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && !v.Date.Before(q.To.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (s *Store) GetSale(id int64) (*entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.sales {
		if v.ID == id {
			cp := v
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) UpdateSaleStatus(id int64, status string) (*entity.Sale, error) {
	if !entity.IsSaleStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sales {
		if s.sales[i].ID == id {
			s.sales[i].Status = status
			cp := s.sales[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ── Entregas ──────────────────────────────────────────────────────────────────

// AddDelivery registra una entrega para los relatórios.
func (s *Store) AddDelivery(d Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.next("entregas")
	if d.Date.IsZero() {
		d.Date = s.now()
	}
	s.deliveries = append(s.deliveries, d)
}

func (s *Store) listDeliveries(status string) []Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Delivery, 0, len(s.deliveries))
	for _, d := range s.deliveries {
		if status == "" || strings.EqualFold(d.Status, status) {
			out = append(out, d)
		}
	}
	return out
}

func (s *Store) listUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]User(nil), s.users...)
}
