package repository

import "github.com/jhoicas/Fermentario-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List() ([]*entity.Supplier, error)
}
