package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

// InventoryItemDTO representación HTTP de un ítem de inventario.
type InventoryItemDTO struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Category            string           `json:"category"`
	Unit                string           `json:"unit"`
	CurrentStock        decimal.Decimal  `json:"current_stock"`
	ReservedStock       decimal.Decimal  `json:"reserved_stock"`
	AvailableStock      decimal.Decimal  `json:"available_stock"`
	ReorderPoint        decimal.Decimal  `json:"reorder_point"`
	CostPerUnit         *decimal.Decimal `json:"cost_per_unit,omitempty"`
	DefaultSupplierID   *string          `json:"default_supplier_id,omitempty"`
	ShelfLifeDays       *int             `json:"shelf_life_days,omitempty"`
	StorageRequirements *string          `json:"storage_requirements,omitempty"`
	IsActive            bool             `json:"is_active"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// NewInventoryItemDTO mapea la entidad al DTO.
func NewInventoryItemDTO(i *entity.InventoryItem) InventoryItemDTO {
	return InventoryItemDTO{
		ID:                  i.ID,
		Name:                i.Name,
		Category:            i.Category,
		Unit:                i.Unit,
		CurrentStock:        i.CurrentStock,
		ReservedStock:       i.ReservedStock,
		AvailableStock:      i.AvailableStock,
		ReorderPoint:        i.ReorderPoint,
		CostPerUnit:         i.CostPerUnit,
		DefaultSupplierID:   i.DefaultSupplierID,
		ShelfLifeDays:       i.ShelfLifeDays,
		StorageRequirements: i.StorageRequirements,
		IsActive:            i.IsActive,
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
	}
}

// NewInventoryItemDTOs mapea una lista de entidades.
func NewInventoryItemDTOs(items []*entity.InventoryItem) []InventoryItemDTO {
	out := make([]InventoryItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, NewInventoryItemDTO(i))
	}
	return out
}

// CreateItemRequest body para POST /api/inventory/items.
type CreateItemRequest struct {
	Name                string           `json:"name"`
	Category            string           `json:"category"`
	Unit                string           `json:"unit"`
	CurrentStock        *decimal.Decimal `json:"current_stock,omitempty"`
	ReservedStock       *decimal.Decimal `json:"reserved_stock,omitempty"`
	ReorderPoint        *decimal.Decimal `json:"reorder_point,omitempty"`
	CostPerUnit         *decimal.Decimal `json:"cost_per_unit,omitempty"`
	DefaultSupplierID   *string          `json:"default_supplier_id,omitempty"`
	ShelfLifeDays       *int             `json:"shelf_life_days,omitempty"`
	StorageRequirements *string          `json:"storage_requirements,omitempty"`
}

// UpdateItemRequest body para PUT /api/inventory/items/:id.
// Los campos de stock no son editables por esta vía: solo el ledger los muta.
type UpdateItemRequest struct {
	Name                *string          `json:"name,omitempty"`
	Category            *string          `json:"category,omitempty"`
	Unit                *string          `json:"unit,omitempty"`
	ReorderPoint        *decimal.Decimal `json:"reorder_point,omitempty"`
	DefaultSupplierID   *string          `json:"default_supplier_id,omitempty"`
	ShelfLifeDays       *int             `json:"shelf_life_days,omitempty"`
	StorageRequirements *string          `json:"storage_requirements,omitempty"`
	IsActive            *bool            `json:"is_active,omitempty"`
}

// ItemResult resultado de una mutación sobre un ítem.
type ItemResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Item    *InventoryItemDTO `json:"item,omitempty"`
}

// PurchaseLineRequest línea de una compra.
type PurchaseLineRequest struct {
	InventoryID string          `json:"inventory_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
	BatchNumber *string         `json:"batch_number,omitempty"`
}

// CreatePurchaseRequest body para POST /api/purchases.
type CreatePurchaseRequest struct {
	SupplierID   string                `json:"supplier_id"`
	Items        []PurchaseLineRequest `json:"items"`
	PurchaseDate *time.Time            `json:"purchase_date,omitempty"`
	Notes        *string               `json:"notes,omitempty"`
}

// PurchaseResult respuesta de una compra.
type PurchaseResult struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	UpdatedItems []InventoryItemDTO `json:"updated_items"`
}

// AdjustmentRequest body para POST /api/inventory/adjustments.
// Quantity lleva signo; Type es adjustment o waste (waste siempre resta).
type AdjustmentRequest struct {
	InventoryID string          `json:"inventory_id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
}

// MovementDTO entrada del log de movimientos.
type MovementDTO struct {
	ID          string           `json:"id"`
	InventoryID string           `json:"inventory_id"`
	Type        string           `json:"type"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
	BatchNumber *string          `json:"batch_number,omitempty"`
	ExpiryDate  *time.Time       `json:"expiry_date,omitempty"`
	Reason      string           `json:"reason"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewMovementDTOs mapea el log a DTOs.
func NewMovementDTOs(movs []*entity.MovementLog) []MovementDTO {
	out := make([]MovementDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, MovementDTO{
			ID:          m.ID,
			InventoryID: m.InventoryID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			UnitCost:    m.UnitCost,
			BatchNumber: m.BatchNumber,
			ExpiryDate:  m.ExpiryDate,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out
}
