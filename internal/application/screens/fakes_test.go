package screens_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// apiErr imita el *api.Error: un error con mensaje para el usuario.
type apiErr struct{ msg string }

func (e apiErr) Error() string       { return "api: " + e.msg }
func (e apiErr) UserMessage() string { return e.msg }

type fakeStock struct {
	mu        sync.Mutex
	items     []entity.StockItem
	listErr   error
	saveErr   error
	deleteErr error
	listCalls atomic.Int32
	created   []dto.StockItemRequest
	updated   map[int64]dto.StockItemRequest
	deleted   []int64

	// order secuencia de llamadas ("mutación y después recarga").
	order []string
}

func (f *fakeStock) record(op string) {
	f.mu.Lock()
	f.order = append(f.order, op)
	f.mu.Unlock()
}

func (f *fakeStock) List(context.Context) ([]entity.StockItem, error) {
	f.listCalls.Add(1)
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entity.StockItem(nil), f.items...), nil
}

func (f *fakeStock) Create(_ context.Context, in dto.StockItemRequest) (*entity.StockItem, error) {
	f.record("create")
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.created = append(f.created, in)
	item := entity.StockItem{ID: int64(len(f.items) + 1), Product: in.Product, Quantity: in.Quantity, Unit: in.Unit}
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeStock) Update(_ context.Context, id int64, in dto.StockItemRequest) (*entity.StockItem, error) {
	f.record("update")
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.updated == nil {
		f.updated = map[int64]dto.StockItemRequest{}
	}
	f.updated[id] = in
	return &entity.StockItem{ID: id, Product: in.Product}, nil
}

func (f *fakeStock) Delete(_ context.Context, id int64) error {
	f.record("delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeMovements struct {
	movements   []entity.Movement
	listErr     error
	registerErr error
	report      *entity.StockReport
	reportCalls atomic.Int32
	lastFilter  dto.MovementFilter
	entries     []dto.MovementRequest
	exits       []dto.MovementRequest
}

func (f *fakeMovements) RegisterEntry(_ context.Context, in dto.MovementRequest) (*entity.Movement, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.entries = append(f.entries, in)
	return &entity.Movement{ID: 1, Type: entity.MovementEntry}, nil
}

func (f *fakeMovements) RegisterExit(_ context.Context, in dto.MovementRequest) (*entity.Movement, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.exits = append(f.exits, in)
	return &entity.Movement{ID: 2, Type: entity.MovementExit}, nil
}

func (f *fakeMovements) List(_ context.Context, filter dto.MovementFilter) ([]entity.Movement, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.movements, nil
}

func (f *fakeMovements) StockReport(context.Context) (*entity.StockReport, error) {
	f.reportCalls.Add(1)
	return f.report, nil
}

type fakeReports struct {
	general     *entity.GeneralReport
	sales       *entity.SalesReport
	deliveries  *entity.DeliveriesReport
	users       *entity.UsersReport
	err         error
	calls       []string
	salesFilter dto.SalesReportFilter
	delivFilter dto.DeliveriesReportFilter
}

func (f *fakeReports) General(context.Context) (*entity.GeneralReport, error) {
	f.calls = append(f.calls, "geral")
	return f.general, f.err
}

func (f *fakeReports) Sales(_ context.Context, filter dto.SalesReportFilter) (*entity.SalesReport, error) {
	f.calls = append(f.calls, "vendas")
	f.salesFilter = filter
	return f.sales, f.err
}

func (f *fakeReports) Deliveries(_ context.Context, filter dto.DeliveriesReportFilter) (*entity.DeliveriesReport, error) {
	f.calls = append(f.calls, "entregas")
	f.delivFilter = filter
	return f.deliveries, f.err
}

func (f *fakeReports) Users(context.Context) (*entity.UsersReport, error) {
	f.calls = append(f.calls, "usuarios")
	return f.users, f.err
}

type fakeRenderer struct {
	doc dto.ReportDocument
}

func (f *fakeRenderer) RenderReport(_ context.Context, doc dto.ReportDocument) ([]byte, error) {
	f.doc = doc
	return []byte("%PDF-fake"), nil
}

type fakeSales struct {
	sales      []entity.Sale
	err        error
	lastFilter dto.SaleFilter
	updates    map[int64]string
}

func (f *fakeSales) List(_ context.Context, filter dto.SaleFilter) ([]entity.Sale, error) {
	f.lastFilter = filter
	return f.sales, nil
}

func (f *fakeSales) UpdateStatus(_ context.Context, id int64, status string) (*entity.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.updates == nil {
		f.updates = map[int64]string{}
	}
	f.updates[id] = status
	return &entity.Sale{ID: id, Status: status}, nil
}
