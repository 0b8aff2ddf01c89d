package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// SupplierUseCase gestiona el catálogo de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// CreateSupplier da de alta un proveedor con nombre único.
func (uc *SupplierUseCase) CreateSupplier(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierDTO, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("el nombre del proveedor es obligatorio: %w", domain.ErrInvalidInput)
	}
	existing, err := uc.supplierRepo.GetByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("verificando nombre: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe un proveedor llamado %q: %w", req.Name, domain.ErrDuplicate)
	}

	s := &entity.Supplier{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		Notes:        req.Notes,
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, fmt.Errorf("creando proveedor: %w", err)
	}
	out := dto.NewSupplierDTO(s)
	return &out, nil
}

// GetSupplier devuelve un proveedor por id.
func (uc *SupplierUseCase) GetSupplier(ctx context.Context, id string) (*dto.SupplierDTO, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando proveedor: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	out := dto.NewSupplierDTO(s)
	return &out, nil
}

// UpdateSupplier actualiza los datos de contacto de un proveedor.
func (uc *SupplierUseCase) UpdateSupplier(ctx context.Context, id string, req dto.SupplierRequest) (*dto.SupplierDTO, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando proveedor: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}

	if req.Name != "" && req.Name != s.Name {
		other, err := uc.supplierRepo.GetByName(req.Name)
		if err != nil {
			return nil, fmt.Errorf("verificando nombre: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("ya existe un proveedor llamado %q: %w", req.Name, domain.ErrDuplicate)
		}
		s.Name = req.Name
	}
	if req.ContactEmail != nil {
		s.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		s.ContactPhone = req.ContactPhone
	}
	if req.Address != nil {
		s.Address = req.Address
	}
	if req.Notes != nil {
		s.Notes = req.Notes
	}

	if err := uc.supplierRepo.Update(s); err != nil {
		return nil, fmt.Errorf("actualizando proveedor: %w", err)
	}
	out := dto.NewSupplierDTO(s)
	return &out, nil
}

// ListSuppliers lista todos los proveedores.
func (uc *SupplierUseCase) ListSuppliers(ctx context.Context) ([]dto.SupplierDTO, error) {
	list, err := uc.supplierRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listando proveedores: %w", err)
	}
	out := make([]dto.SupplierDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NewSupplierDTO(s))
	}
	return out, nil
}
