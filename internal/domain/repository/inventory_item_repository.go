package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para ítems de inventario.
// UpdateStock y UpdateCost solo deben invocarse desde el ledger, dentro de una
// transacción que ya bloqueó la fila con GetForUpdate.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.InventoryItem, error)
	GetActiveByName(name string) (*entity.InventoryItem, error)
	List(activeOnly bool) ([]*entity.InventoryItem, error)
	ListByCategory(category string) ([]*entity.InventoryItem, error)
	// ListLowStock devuelve ítems activos con available_stock <= reorder_point.
	ListLowStock() ([]*entity.InventoryItem, error)
	// Update escribe los campos descriptivos; nunca current_stock/reserved_stock.
	Update(item *entity.InventoryItem) error
	UpdateStock(id string, current, reserved decimal.Decimal) error
	UpdateCost(id string, cost decimal.Decimal) error
	Deactivate(id string) error
	Delete(id string) error
	// HasReferences indica si el ítem aparece en movimientos, lotes o ventas.
	HasReferences(id string) (bool, error)
}
