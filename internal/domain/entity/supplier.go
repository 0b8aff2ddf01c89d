package entity

import "time"

// Supplier es un proveedor de materia prima.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail *string
	ContactPhone *string
	Address      *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
