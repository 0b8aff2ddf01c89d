package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fermentario-api/internal/application/inventory"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner clona el estado antes de ejecutar y lo
// restaura si la función devuelve error, imitando el rollback de Postgres.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type memStore struct {
	items     map[string]*entity.InventoryItem
	movements []*entity.MovementLog
	seq       int
}

func newMemStore() *memStore {
	return &memStore{items: map[string]*entity.InventoryItem{}}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for id, it := range s.items {
		cp := *it
		c.items[id] = &cp
	}
	c.movements = append([]*entity.MovementLog(nil), s.movements...)
	c.seq = s.seq
	return c
}

func (s *memStore) restore(from *memStore) {
	s.items = from.items
	s.movements = from.movements
	s.seq = from.seq
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%03d", prefix, s.seq)
}

func seedItem(s *memStore, id, name, category string, current, reserved string) *entity.InventoryItem {
	item := &entity.InventoryItem{
		ID:            id,
		Name:          name,
		Category:      category,
		Unit:          "kg",
		CurrentStock:  dec(current),
		ReservedStock: dec(reserved),
		IsActive:      true,
	}
	item.AvailableStock = item.CurrentStock.Sub(item.ReservedStock)
	s.items[id] = item
	return item
}

type fakeItemRepo struct {
	store *memStore
	refs  map[string]bool // respuestas de HasReferences
}

var _ repository.InventoryItemRepository = (*fakeItemRepo)(nil)

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = r.store.nextID("itm")
	}
	cp := *item
	r.store.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := r.store.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) GetActiveByName(name string) (*entity.InventoryItem, error) {
	for _, it := range r.store.items {
		if it.IsActive && it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(activeOnly bool) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.store.items {
		if activeOnly && !it.IsActive {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) ListByCategory(category string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.store.items {
		if it.IsActive && it.Category == category {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListLowStock() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.store.items {
		if it.IsActive && it.CurrentStock.Sub(it.ReservedStock).LessThanOrEqual(it.ReorderPoint) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	existing, ok := r.store.items[item.ID]
	if !ok {
		return nil
	}
	cp := *item
	cp.CurrentStock = existing.CurrentStock
	cp.ReservedStock = existing.ReservedStock
	cp.AvailableStock = existing.AvailableStock
	r.store.items[item.ID] = &cp
	return nil
}

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

func (r *fakeItemRepo) UpdateCost(id string, cost decimal.Decimal) error {
	it, ok := r.store.items[id]
	if !ok {
		return fmt.Errorf("ítem %s no existe", id)
	}
	c := cost
	it.CostPerUnit = &c
	return nil
}

func (r *fakeItemRepo) Deactivate(id string) error {
	if it, ok := r.store.items[id]; ok {
		it.IsActive = false
	}
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.store.items, id)
	return nil
}

func (r *fakeItemRepo) HasReferences(id string) (bool, error) {
	return r.refs[id], nil
}

type fakeLogRepo struct {
	store *memStore
}

var _ repository.MovementLogRepository = (*fakeLogRepo)(nil)

func (r *fakeLogRepo) Create(mov *entity.MovementLog) error {
	if mov.ID == "" {
		mov.ID = r.store.nextID("mov")
	}
	cp := *mov
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeLogRepo) ListByItem(inventoryID string, limit, offset int) ([]*entity.MovementLog, error) {
	var all []*entity.MovementLog
	for _, m := range r.store.movements {
		if m.InventoryID == inventoryID {
			all = append(all, m)
		}
	}
	// más reciente primero, como el repositorio real
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeLogRepo) SumByItem(inventoryID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.store.movements {
		if m.InventoryID == inventoryID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

var _ repository.SupplierRepository = (*fakeSupplierRepo)(nil)

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	if s.ID == "" {
		s.ID = fmt.Sprintf("sup-%03d", len(r.suppliers)+1)
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type fakeTxRunner struct {
	store *memStore
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.InventoryItemRepository, repository.MovementLogRepository) error) error {
	before := f.store.snapshot()
	if err := fn(&fakeItemRepo{store: f.store}, &fakeLogRepo{store: f.store}); err != nil {
		f.store.restore(before)
		return err
	}
	return nil
}

// requireStock compara current/reserved de un ítem contra lo esperado.
func requireStock(t *testing.T, s *memStore, id, current, reserved string) {
	t.Helper()
	it, ok := s.items[id]
	require.True(t, ok, "el ítem %s debe existir", id)
	require.True(t, it.CurrentStock.Equal(dec(current)),
		"current de %s: esperaba %s, tiene %s", id, current, it.CurrentStock)
	require.True(t, it.ReservedStock.Equal(dec(reserved)),
		"reserved de %s: esperaba %s, tiene %s", id, reserved, it.ReservedStock)
}
