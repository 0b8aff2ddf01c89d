package repository

import "github.com/jhoicas/Fermentario-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(c *entity.Customer) error
	List(activeOnly bool) ([]*entity.Customer, error)
}
