package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `
	id, name, category, unit, current_stock, reserved_stock, available_stock,
	reorder_point, cost_per_unit, default_supplier_id, shelf_life_days,
	storage_requirements, is_active, created_at, updated_at`

// InventoryItemRepo implementación de InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
// available_stock es una columna generada: se lee siempre, no se escribe nunca.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(
		&i.ID, &i.Name, &i.Category, &i.Unit, &i.CurrentStock, &i.ReservedStock,
		&i.AvailableStock, &i.ReorderPoint, &i.CostPerUnit, &i.DefaultSupplierID,
		&i.ShelfLifeDays, &i.StorageRequirements, &i.IsActive, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un nuevo ítem. El id se genera aquí si viene vacío.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory (id, name, category, unit, current_stock, reserved_stock,
			reorder_point, cost_per_unit, default_supplier_id, shelf_life_days,
			storage_requirements, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Unit, item.CurrentStock, item.ReservedStock,
		item.ReorderPoint, item.CostPerUnit, item.DefaultSupplierID, item.ShelfLifeDays,
		item.StorageRequirements, item.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene un ítem y bloquea su fila (SELECT FOR UPDATE).
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE id = $1 FOR UPDATE`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item for update: %w", err)
	}
	return item, nil
}

// GetActiveByName obtiene el ítem activo con ese nombre exacto, si existe.
func (r *InventoryItemRepo) GetActiveByName(name string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE name = $1 AND is_active = true`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item by name: %w", err)
	}
	return item, nil
}

// List lista ítems por nombre; activeOnly filtra los desactivados.
func (r *InventoryItemRepo) List(activeOnly bool) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`
	return r.list(query)
}

// ListByCategory lista ítems activos de una categoría.
func (r *InventoryItemRepo) ListByCategory(category string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory
		WHERE category = $1 AND is_active = true ORDER BY name`
	return r.list(query, category)
}

// ListLowStock lista ítems activos con disponible en o bajo el punto de reorden.
func (r *InventoryItemRepo) ListLowStock() ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory
		WHERE is_active = true AND available_stock <= reorder_point
		ORDER BY name`
	return r.list(query)
}

func (r *InventoryItemRepo) list(query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var items []*entity.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update escribe los campos descriptivos del ítem. Las cantidades de stock
// no están en este UPDATE a propósito.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory SET name = $2, category = $3, unit = $4, reorder_point = $5,
			default_supplier_id = $6, shelf_life_days = $7, storage_requirements = $8,
			is_active = $9, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Unit, item.ReorderPoint,
		item.DefaultSupplierID, item.ShelfLifeDays, item.StorageRequirements, item.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe el par current/reserved. El CHECK stock_no_negativo de
// la tabla respalda el invariante que el ledger ya verificó.
func (r *InventoryItemRepo) UpdateStock(id string, current, reserved decimal.Decimal) error {
	query := `
		UPDATE inventory SET current_stock = $2, reserved_stock = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, current, reserved)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCost sobreescribe el costo unitario (gana la última compra).
func (r *InventoryItemRepo) UpdateCost(id string, cost decimal.Decimal) error {
	query := `UPDATE inventory SET cost_per_unit = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, cost)
	if err != nil {
		return fmt.Errorf("update cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate marca el ítem como inactivo (borrado blando).
func (r *InventoryItemRepo) Deactivate(id string) error {
	query := `UPDATE inventory SET is_active = false, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el ítem. Solo válido sin referencias (el caller verifica antes).
func (r *InventoryItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HasReferences indica si el ítem aparece en movimientos, lotes, recetas o ventas.
func (r *InventoryItemRepo) HasReferences(id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM inventory_movements WHERE inventory_id = $1)
			OR EXISTS (SELECT 1 FROM production_batches WHERE product_inventory_id = $1)
			OR EXISTS (SELECT 1 FROM production_batch_ingredients WHERE ingredient_inventory_id = $1)
			OR EXISTS (SELECT 1 FROM sale_items WHERE inventory_id = $1)`
	var referenced bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&referenced); err != nil {
		return false, fmt.Errorf("check inventory references: %w", err)
	}
	return referenced, nil
}
