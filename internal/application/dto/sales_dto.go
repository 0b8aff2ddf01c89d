package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

// SaleLineRequest línea de una venta.
type SaleLineRequest struct {
	InventoryID string          `json:"inventory_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Notes       *string         `json:"notes,omitempty"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID     *string           `json:"customer_id,omitempty"`
	SaleDate       *time.Time        `json:"sale_date,omitempty"`
	Items          []SaleLineRequest `json:"items"`
	TaxAmount      *decimal.Decimal  `json:"tax_amount,omitempty"`
	DiscountAmount *decimal.Decimal  `json:"discount_amount,omitempty"`
	PaymentMethod  *string           `json:"payment_method,omitempty"`
	PaymentStatus  *string           `json:"payment_status,omitempty"`
	Notes          *string           `json:"notes,omitempty"`
}

// SaleResult respuesta de la creación de una venta.
type SaleResult struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	SaleID       *string            `json:"sale_id,omitempty"`
	SaleNumber   *string            `json:"sale_number,omitempty"`
	UpdatedItems []InventoryItemDTO `json:"updated_items"`
}

// SaleDTO representación HTTP de una venta con sus líneas.
type SaleDTO struct {
	ID             string          `json:"id"`
	SaleNumber     string          `json:"sale_number"`
	CustomerID     *string         `json:"customer_id,omitempty"`
	SaleDate       time.Time       `json:"sale_date"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentMethod  *string         `json:"payment_method,omitempty"`
	PaymentStatus  string          `json:"payment_status"`
	Notes          *string         `json:"notes,omitempty"`
	Items          []SaleItemDTO   `json:"items,omitempty"`
}

// SaleItemDTO línea de venta. ProductName se resuelve al leer la venta.
type SaleItemDTO struct {
	InventoryID string          `json:"inventory_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Notes       *string         `json:"notes,omitempty"`
}

// NewSaleDTO mapea la entidad (sin líneas).
func NewSaleDTO(s *entity.Sale) SaleDTO {
	return SaleDTO{
		ID:             s.ID,
		SaleNumber:     s.SaleNumber,
		CustomerID:     s.CustomerID,
		SaleDate:       s.SaleDate,
		Subtotal:       s.Subtotal,
		TaxAmount:      s.TaxAmount,
		DiscountAmount: s.DiscountAmount,
		TotalAmount:    s.TotalAmount,
		PaymentMethod:  s.PaymentMethod,
		PaymentStatus:  s.PaymentStatus,
		Notes:          s.Notes,
	}
}

// CustomerDTO representación HTTP de un cliente.
type CustomerDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	CustomerType *string   `json:"customer_type,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CustomerRequest body para crear/actualizar un cliente.
type CustomerRequest struct {
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	CustomerType *string `json:"customer_type,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// NewCustomerDTO mapea la entidad al DTO.
func NewCustomerDTO(c *entity.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		CustomerType: c.CustomerType,
		Notes:        c.Notes,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

// SupplierDTO representación HTTP de un proveedor.
type SupplierDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SupplierRequest body para crear/actualizar un proveedor.
type SupplierRequest struct {
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// NewSupplierDTO mapea la entidad al DTO.
func NewSupplierDTO(s *entity.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}
}
