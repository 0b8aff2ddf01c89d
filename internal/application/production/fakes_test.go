package production_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/application/production"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el motor de producción. El TxRunner clona todo el
// estado antes de ejecutar y lo restaura ante error, imitando el rollback.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type prodStore struct {
	items       map[string]*entity.InventoryItem
	movements   []*entity.MovementLog
	batches     map[string]*entity.ProductionBatch
	ingredients []*entity.BatchIngredient
	reminders   map[string]*entity.ProductionReminder
	recipes     map[string]*entity.RecipeTemplate
	seq         int
}

func newProdStore() *prodStore {
	return &prodStore{
		items:     map[string]*entity.InventoryItem{},
		batches:   map[string]*entity.ProductionBatch{},
		reminders: map[string]*entity.ProductionReminder{},
		recipes:   map[string]*entity.RecipeTemplate{},
	}
}

func (s *prodStore) snapshot() *prodStore {
	c := newProdStore()
	for id, it := range s.items {
		cp := *it
		c.items[id] = &cp
	}
	c.movements = append([]*entity.MovementLog(nil), s.movements...)
	for id, b := range s.batches {
		cp := *b
		c.batches[id] = &cp
	}
	c.ingredients = append([]*entity.BatchIngredient(nil), s.ingredients...)
	for id, r := range s.reminders {
		cp := *r
		c.reminders[id] = &cp
	}
	c.recipes = s.recipes
	c.seq = s.seq
	return c
}

func (s *prodStore) restore(from *prodStore) {
	s.items = from.items
	s.movements = from.movements
	s.batches = from.batches
	s.ingredients = from.ingredients
	s.reminders = from.reminders
	s.seq = from.seq
}

func (s *prodStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%03d", prefix, s.seq)
}

func seedItem(s *prodStore, id, name, category, current string) *entity.InventoryItem {
	item := &entity.InventoryItem{
		ID:           id,
		Name:         name,
		Category:     category,
		Unit:         "kg",
		CurrentStock: dec(current),
		IsActive:     true,
	}
	item.AvailableStock = item.CurrentStock
	s.items[id] = item
	return item
}

type fakeItemRepo struct{ store *prodStore }

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

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) { return r.GetByID(id) }

func (r *fakeItemRepo) GetActiveByName(name string) (*entity.InventoryItem, error) {
	for _, it := range r.store.items {
		if it.IsActive && it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(bool) ([]*entity.InventoryItem, error)             { return nil, nil }
func (r *fakeItemRepo) ListByCategory(string) ([]*entity.InventoryItem, error) { return nil, nil }
func (r *fakeItemRepo) ListLowStock() ([]*entity.InventoryItem, error)         { return nil, nil }
func (r *fakeItemRepo) Update(*entity.InventoryItem) error                     { return nil }

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
	if it, ok := r.store.items[id]; ok {
		c := cost
		it.CostPerUnit = &c
	}
	return nil
}

func (r *fakeItemRepo) Deactivate(id string) error        { return nil }
func (r *fakeItemRepo) Delete(id string) error            { return nil }
func (r *fakeItemRepo) HasReferences(string) (bool, error) { return false, nil }

type fakeLogRepo struct{ store *prodStore }

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
	var out []*entity.MovementLog
	for _, m := range r.store.movements {
		if m.InventoryID == inventoryID {
			out = append(out, m)
		}
	}
	return out, nil
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

type fakeBatchRepo struct{ store *prodStore }

var _ repository.ProductionBatchRepository = (*fakeBatchRepo)(nil)

func (r *fakeBatchRepo) Create(batch *entity.ProductionBatch) error {
	if batch.ID == "" {
		batch.ID = r.store.nextID("bat")
	}
	cp := *batch
	r.store.batches[batch.ID] = &cp
	return nil
}

func (r *fakeBatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	b, ok := r.store.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBatchRepo) GetForUpdate(id string) (*entity.ProductionBatch, error) { return r.GetByID(id) }

func (r *fakeBatchRepo) Update(batch *entity.ProductionBatch) error {
	cp := *batch
	r.store.batches[batch.ID] = &cp
	return nil
}

func (r *fakeBatchRepo) ListActive() ([]*entity.ProductionBatch, error) {
	var out []*entity.ProductionBatch
	for _, b := range r.store.batches {
		if b.Status == entity.BatchInProgress {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *fakeBatchRepo) ListHistory(productInventoryID string, limit int) ([]*entity.ProductionBatch, error) {
	var out []*entity.ProductionBatch
	for _, b := range r.store.batches {
		if b.Status == entity.BatchInProgress {
			continue
		}
		if productInventoryID != "" && b.ProductInventoryID != productInventoryID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBatchRepo) LastNumberWithPrefix(prefix string) (string, error) {
	var numbers []string
	for _, b := range r.store.batches {
		if strings.HasPrefix(b.BatchNumber, prefix+"-") {
			numbers = append(numbers, b.BatchNumber)
		}
	}
	if len(numbers) == 0 {
		return "", nil
	}
	sort.Strings(numbers)
	return numbers[len(numbers)-1], nil
}

func (r *fakeBatchRepo) AddIngredient(ing *entity.BatchIngredient) error {
	if ing.ID == "" {
		ing.ID = r.store.nextID("ing")
	}
	cp := *ing
	r.store.ingredients = append(r.store.ingredients, &cp)
	return nil
}

func (r *fakeBatchRepo) ListIngredients(batchID string) ([]*entity.BatchIngredient, error) {
	var out []*entity.BatchIngredient
	for _, ing := range r.store.ingredients {
		if ing.BatchID == batchID {
			cp := *ing
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) CountInProgressByRecipe(recipeTemplateID string) (int, error) {
	n := 0
	for _, b := range r.store.batches {
		if b.Status == entity.BatchInProgress && b.RecipeTemplateID != nil && *b.RecipeTemplateID == recipeTemplateID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBatchRepo) CountInProgressByIngredient(inventoryID string) (int, error) {
	n := 0
	for _, ing := range r.store.ingredients {
		b, ok := r.store.batches[ing.BatchID]
		if ok && b.Status == entity.BatchInProgress && ing.IngredientInventoryID == inventoryID {
			n++
		}
	}
	return n, nil
}

type fakeReminderRepo struct{ store *prodStore }

var _ repository.ReminderRepository = (*fakeReminderRepo)(nil)

func (r *fakeReminderRepo) Create(rem *entity.ProductionReminder) error {
	if rem.ID == "" {
		rem.ID = r.store.nextID("rem")
	}
	cp := *rem
	r.store.reminders[rem.ID] = &cp
	return nil
}

func (r *fakeReminderRepo) GetByID(id string) (*entity.ProductionReminder, error) {
	rem, ok := r.store.reminders[id]
	if !ok {
		return nil, nil
	}
	cp := *rem
	return &cp, nil
}

func (r *fakeReminderRepo) ListPending() ([]*entity.ProductionReminder, error) {
	var out []*entity.ProductionReminder
	for _, rem := range r.store.reminders {
		if rem.CompletedAt == nil {
			cp := *rem
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out, nil
}

func (r *fakeReminderRepo) ListByBatch(batchID string) ([]*entity.ProductionReminder, error) {
	var out []*entity.ProductionReminder
	for _, rem := range r.store.reminders {
		if rem.BatchID == batchID {
			cp := *rem
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out, nil
}

func (r *fakeReminderRepo) SetSnooze(id string, until time.Time) error {
	if rem, ok := r.store.reminders[id]; ok {
		u := until
		rem.SnoozedUntil = &u
	}
	return nil
}

func (r *fakeReminderRepo) SetCompleted(id string, at time.Time, notes *string) error {
	rem, ok := r.store.reminders[id]
	if !ok || rem.CompletedAt != nil {
		return nil
	}
	a := at
	rem.CompletedAt = &a
	if notes != nil {
		rem.Notes = notes
	}
	return nil
}

type fakeRecipeRepo struct{ store *prodStore }

var _ repository.RecipeTemplateRepository = (*fakeRecipeRepo)(nil)

func (r *fakeRecipeRepo) Create(t *entity.RecipeTemplate) error {
	if t.ID == "" {
		t.ID = r.store.nextID("rcp")
	}
	cp := *t
	r.store.recipes[t.ID] = &cp
	return nil
}

func (r *fakeRecipeRepo) GetByID(id string) (*entity.RecipeTemplate, error) {
	t, ok := r.store.recipes[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeRecipeRepo) Update(t *entity.RecipeTemplate) error {
	cp := *t
	r.store.recipes[t.ID] = &cp
	return nil
}

func (r *fakeRecipeRepo) Deactivate(id string) error {
	if t, ok := r.store.recipes[id]; ok {
		t.IsActive = false
	}
	return nil
}

func (r *fakeRecipeRepo) ListActive() ([]*entity.RecipeTemplate, error) {
	var out []*entity.RecipeTemplate
	for _, t := range r.store.recipes {
		if t.IsActive {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProdTxRunner struct{ store *prodStore }

var _ production.TxRunner = (*fakeProdTxRunner)(nil)

func (f *fakeProdTxRunner) RunProduction(ctx context.Context, fn func(
	repository.InventoryItemRepository,
	repository.MovementLogRepository,
	repository.ProductionBatchRepository,
	repository.ReminderRepository,
) error) error {
	before := f.store.snapshot()
	err := fn(
		&fakeItemRepo{store: f.store},
		&fakeLogRepo{store: f.store},
		&fakeBatchRepo{store: f.store},
		&fakeReminderRepo{store: f.store},
	)
	if err != nil {
		f.store.restore(before)
		return err
	}
	return nil
}
