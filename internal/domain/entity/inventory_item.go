package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryFinishedProduct marca los ítems vendibles (salida de producción).
// Cualquier otra categoría es libre (ingredientes, empaques, etc.).
const CategoryFinishedProduct = "finished_product"

// InventoryItem representa un material almacenado o un producto terminado.
// CurrentStock y ReservedStock solo se mutan a través del ledger (Adjust);
// AvailableStock es una columna generada en BD (current - reserved) y nunca se escribe.
type InventoryItem struct {
	ID                  string
	Name                string
	Category            string
	Unit                string
	CurrentStock        decimal.Decimal
	ReservedStock       decimal.Decimal
	AvailableStock      decimal.Decimal // derivado, solo lectura
	ReorderPoint        decimal.Decimal
	CostPerUnit         *decimal.Decimal // último costo de compra (last-write-wins)
	DefaultSupplierID   *string
	ShelfLifeDays       *int
	StorageRequirements *string
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsFinishedProduct indica si el ítem es un producto terminado vendible.
func (i *InventoryItem) IsFinishedProduct() bool {
	return i.Category == CategoryFinishedProduct
}
