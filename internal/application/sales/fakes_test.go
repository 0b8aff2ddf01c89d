package sales_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/application/sales"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// Fakes en memoria; el TxRunner restaura el estado ante error, como el
// rollback de la transacción real.

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type salesStore struct {
	items     map[string]*entity.InventoryItem
	movements []*entity.MovementLog
	sales     map[string]*entity.Sale
	saleItems []*entity.SaleItem
	customers map[string]*entity.Customer
	seq       int
}

func newSalesStore() *salesStore {
	return &salesStore{
		items:     map[string]*entity.InventoryItem{},
		sales:     map[string]*entity.Sale{},
		customers: map[string]*entity.Customer{},
	}
}

func (s *salesStore) snapshot() *salesStore {
	c := newSalesStore()
	for id, it := range s.items {
		cp := *it
		c.items[id] = &cp
	}
	c.movements = append([]*entity.MovementLog(nil), s.movements...)
	for id, sale := range s.sales {
		cp := *sale
		c.sales[id] = &cp
	}
	c.saleItems = append([]*entity.SaleItem(nil), s.saleItems...)
	c.customers = s.customers
	c.seq = s.seq
	return c
}

func (s *salesStore) restore(from *salesStore) {
	s.items = from.items
	s.movements = from.movements
	s.sales = from.sales
	s.saleItems = from.saleItems
	s.seq = from.seq
}

func (s *salesStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%03d", prefix, s.seq)
}

func seedProduct(s *salesStore, id, name, current string) *entity.InventoryItem {
	item := &entity.InventoryItem{
		ID:           id,
		Name:         name,
		Category:     entity.CategoryFinishedProduct,
		Unit:         "frasco",
		CurrentStock: dec(current),
		IsActive:     true,
	}
	item.AvailableStock = item.CurrentStock
	s.items[id] = item
	return item
}

type fakeItemRepo struct{ store *salesStore }

var _ repository.InventoryItemRepository = (*fakeItemRepo)(nil)

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error { return nil }

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := r.store.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) { return r.GetByID(id) }
func (r *fakeItemRepo) GetActiveByName(string) (*entity.InventoryItem, error) { return nil, nil }
func (r *fakeItemRepo) List(bool) ([]*entity.InventoryItem, error)            { return nil, nil }
func (r *fakeItemRepo) ListByCategory(string) ([]*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) ListLowStock() ([]*entity.InventoryItem, error) { return nil, nil }
func (r *fakeItemRepo) Update(*entity.InventoryItem) error             { return nil }

func (r *fakeItemRepo) UpdateStock(id string, current, reserved decimal.Decimal) error {
	it, ok := r.store.items[id]
	if !ok {
		return fmt.Errorf("ítem %s no existe", id)
	}
	it.CurrentStock = current
	it.ReservedStock = reserved
	it.AvailableStock = current.Sub(reserved)
	return nil
}

func (r *fakeItemRepo) UpdateCost(id string, cost decimal.Decimal) error { return nil }
func (r *fakeItemRepo) Deactivate(string) error                          { return nil }
func (r *fakeItemRepo) Delete(string) error                              { return nil }
func (r *fakeItemRepo) HasReferences(string) (bool, error)               { return false, nil }

type fakeLogRepo struct{ store *salesStore }

var _ repository.MovementLogRepository = (*fakeLogRepo)(nil)

func (r *fakeLogRepo) Create(mov *entity.MovementLog) error {
	if mov.ID == "" {
		mov.ID = r.store.nextID("mov")
	}
	cp := *mov
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeLogRepo) ListByItem(string, int, int) ([]*entity.MovementLog, error) { return nil, nil }

func (r *fakeLogRepo) SumByItem(inventoryID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.store.movements {
		if m.InventoryID == inventoryID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}

type fakeSaleRepo struct{ store *salesStore }

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = r.store.nextID("sal")
	}
	cp := *sale
	r.store.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) AddItem(item *entity.SaleItem) error {
	if item.ID == "" {
		item.ID = r.store.nextID("sli")
	}
	cp := *item
	r.store.saleItems = append(r.store.saleItems, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.store.saleItems {
		if it.SaleID == saleID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) LastNumberWithPrefix(prefix string) (string, error) {
	var numbers []string
	for _, s := range r.store.sales {
		if strings.HasPrefix(s.SaleNumber, prefix+"-") {
			numbers = append(numbers, s.SaleNumber)
		}
	}
	if len(numbers) == 0 {
		return "", nil
	}
	sort.Strings(numbers)
	return numbers[len(numbers)-1], nil
}

type fakeCustomerRepo struct{ store *salesStore }

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	if c.ID == "" {
		c.ID = r.store.nextID("cus")
	}
	cp := *c
	r.store.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.store.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.store.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) List(activeOnly bool) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.store.customers {
		if activeOnly && !c.IsActive {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeSaleTxRunner struct{ store *salesStore }

var _ sales.TxRunner = (*fakeSaleTxRunner)(nil)

func (f *fakeSaleTxRunner) RunSale(ctx context.Context, fn func(
	repository.InventoryItemRepository,
	repository.MovementLogRepository,
	repository.SaleRepository,
) error) error {
	before := f.store.snapshot()
	err := fn(&fakeItemRepo{store: f.store}, &fakeLogRepo{store: f.store}, &fakeSaleRepo{store: f.store})
	if err != nil {
		f.store.restore(before)
		return err
	}
	return nil
}
