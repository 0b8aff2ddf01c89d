package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger de inventario.
const (
	MovementPurchase          = "purchase"           // entrada por compra
	MovementProductionConsume = "production_consume" // consumo de ingrediente en un lote
	MovementProductionOutput  = "production_output"  // salida de producto terminado de un lote
	MovementSale              = "sale"               // salida por venta
	MovementAdjustment        = "adjustment"         // ajuste manual (con signo)
	MovementWaste             = "waste"              // merma / descarte
)

// MovementLog es el registro inmutable de un cambio de stock.
// Append-only: nunca se actualiza ni se borra. La suma de Quantity por ítem,
// reproducida desde su creación, debe igualar su current_stock.
type MovementLog struct {
	ID          string
	InventoryID string
	Type        string
	Quantity    decimal.Decimal // delta con signo
	UnitCost    *decimal.Decimal
	BatchNumber *string
	ExpiryDate  *time.Time
	Reason      string
	CreatedAt   time.Time
}
