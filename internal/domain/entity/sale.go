package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una venta.
const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentRefunded  = "refunded"
)

// Sale es la cabecera de una transacción de venta.
// total = subtotal + tax - discount, sin recorte a cero: un descuento mayor
// que el subtotal produce un total negativo que el caller debe poder mostrar.
type Sale struct {
	ID             string
	SaleNumber     string // SALE-YYYYMMDD-NNN
	CustomerID     *string
	SaleDate       time.Time
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentMethod  *string
	PaymentStatus  string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaleItem es una línea de venta. LineTotal = Quantity * UnitPrice.
type SaleItem struct {
	ID          string
	SaleID      string
	InventoryID string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	Notes       *string
}
