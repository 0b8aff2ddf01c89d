package entity

import "time"

// Customer es un cliente que compra producto terminado.
type Customer struct {
	ID           string
	Name         string
	Email        *string
	Phone        *string
	Address      *string
	CustomerType *string // retail, wholesale, restaurant...
	Notes        *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
