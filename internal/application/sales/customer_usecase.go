package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// CustomerUseCase gestiona el catálogo de clientes.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// CreateCustomer da de alta un cliente.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerDTO, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("el nombre del cliente es obligatorio: %w", domain.ErrInvalidInput)
	}
	c := &entity.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		CustomerType: req.CustomerType,
		Notes:        req.Notes,
		IsActive:     true,
	}
	if err := uc.customerRepo.Create(c); err != nil {
		return nil, fmt.Errorf("creando cliente: %w", err)
	}
	out := dto.NewCustomerDTO(c)
	return &out, nil
}

// GetCustomer devuelve un cliente por id.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando cliente: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	out := dto.NewCustomerDTO(c)
	return &out, nil
}

// UpdateCustomer actualiza los datos de un cliente.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, req dto.CustomerRequest) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando cliente: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}

	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.CustomerType != nil {
		c.CustomerType = req.CustomerType
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := uc.customerRepo.Update(c); err != nil {
		return nil, fmt.Errorf("actualizando cliente: %w", err)
	}
	out := dto.NewCustomerDTO(c)
	return &out, nil
}

// ListCustomers lista clientes; activeOnly filtra los desactivados.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, activeOnly bool) ([]dto.CustomerDTO, error) {
	list, err := uc.customerRepo.List(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("listando clientes: %w", err)
	}
	out := make([]dto.CustomerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCustomerDTO(c))
	}
	return out, nil
}
