package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// ItemUseCase gestiona el catálogo de ítems de inventario. Las lecturas y
// escrituras descriptivas van directo al repositorio; las cantidades de stock
// nunca se tocan desde aquí.
type ItemUseCase struct {
	itemRepo repository.InventoryItemRepository
	movRepo  repository.MovementLogRepository
	log      *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.InventoryItemRepository, movRepo repository.MovementLogRepository, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, movRepo: movRepo, log: log}
}

// CreateItem da de alta un ítem. El nombre debe ser único entre los activos;
// el stock inicial se acepta aquí porque el alta no tiene historia que auditar.
func (uc *ItemUseCase) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResult, error) {
	if req.Name == "" || req.Category == "" || req.Unit == "" {
		return nil, fmt.Errorf("name, category y unit son obligatorios: %w", domain.ErrInvalidInput)
	}

	existing, err := uc.itemRepo.GetActiveByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("verificando nombre: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe un ítem activo llamado %q: %w", req.Name, domain.ErrDuplicate)
	}

	item := &entity.InventoryItem{
		Name:                req.Name,
		Category:            req.Category,
		Unit:                req.Unit,
		CurrentStock:        decimal.Zero,
		ReservedStock:       decimal.Zero,
		ReorderPoint:        decimal.Zero,
		CostPerUnit:         req.CostPerUnit,
		DefaultSupplierID:   req.DefaultSupplierID,
		ShelfLifeDays:       req.ShelfLifeDays,
		StorageRequirements: req.StorageRequirements,
		IsActive:            true,
	}
	if req.CurrentStock != nil {
		item.CurrentStock = *req.CurrentStock
	}
	if req.ReservedStock != nil {
		item.ReservedStock = *req.ReservedStock
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = *req.ReorderPoint
	}
	if item.ReservedStock.LessThan(decimal.Zero) || item.CurrentStock.LessThan(item.ReservedStock) {
		return nil, fmt.Errorf("el stock inicial viola 0 <= reservado <= actual: %w", domain.ErrInvalidInput)
	}
	item.AvailableStock = item.CurrentStock.Sub(item.ReservedStock)

	if err := uc.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("creando ítem: %w", err)
	}

	uc.log.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("ítem de inventario creado")
	itemDTO := dto.NewInventoryItemDTO(item)
	return &dto.ItemResult{Success: true, Message: "ítem creado", Item: &itemDTO}, nil
}

// GetItem devuelve un ítem por id.
func (uc *ItemUseCase) GetItem(ctx context.Context, id string) (*dto.InventoryItemDTO, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando ítem: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %s: %w", id, domain.ErrNotFound)
	}
	itemDTO := dto.NewInventoryItemDTO(item)
	return &itemDTO, nil
}

// UpdateItem actualiza los campos descriptivos de un ítem. Los campos de
// stock no pasan por aquí: solo el ledger los muta.
func (uc *ItemUseCase) UpdateItem(ctx context.Context, id string, req dto.UpdateItemRequest) (*dto.ItemResult, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando ítem: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %s: %w", id, domain.ErrNotFound)
	}

	if req.Name != nil && *req.Name != item.Name {
		if *req.Name == "" {
			return nil, fmt.Errorf("el nombre no puede quedar vacío: %w", domain.ErrInvalidInput)
		}
		other, err := uc.itemRepo.GetActiveByName(*req.Name)
		if err != nil {
			return nil, fmt.Errorf("verificando nombre: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("ya existe un ítem activo llamado %q: %w", *req.Name, domain.ErrDuplicate)
		}
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = *req.ReorderPoint
	}
	if req.DefaultSupplierID != nil {
		item.DefaultSupplierID = req.DefaultSupplierID
	}
	if req.ShelfLifeDays != nil {
		item.ShelfLifeDays = req.ShelfLifeDays
	}
	if req.StorageRequirements != nil {
		item.StorageRequirements = req.StorageRequirements
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("actualizando ítem: %w", err)
	}
	itemDTO := dto.NewInventoryItemDTO(item)
	return &dto.ItemResult{Success: true, Message: "ítem actualizado", Item: &itemDTO}, nil
}

// DeleteItem borra un ítem sin historia; si tiene movimientos, lotes o ventas
// asociados lo desactiva en su lugar para preservar la trazabilidad.
func (uc *ItemUseCase) DeleteItem(ctx context.Context, id string) (*dto.OpResult, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando ítem: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %s: %w", id, domain.ErrNotFound)
	}

	referenced, err := uc.itemRepo.HasReferences(id)
	if err != nil {
		return nil, fmt.Errorf("verificando referencias: %w", err)
	}
	if referenced {
		if err := uc.itemRepo.Deactivate(id); err != nil {
			return nil, fmt.Errorf("desactivando ítem: %w", err)
		}
		uc.log.Info().Str("item_id", id).Msg("ítem con historia: desactivado en lugar de borrado")
		return &dto.OpResult{Success: true, Message: "el ítem tiene historia; se desactivó en lugar de borrarlo"}, nil
	}

	if err := uc.itemRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("borrando ítem: %w", err)
	}
	return &dto.OpResult{Success: true, Message: "ítem borrado"}, nil
}

// ListItems lista el catálogo; activeOnly filtra los desactivados.
func (uc *ItemUseCase) ListItems(ctx context.Context, activeOnly bool) ([]dto.InventoryItemDTO, error) {
	items, err := uc.itemRepo.List(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("listando ítems: %w", err)
	}
	return dto.NewInventoryItemDTOs(items), nil
}

// ListFinishedProducts lista los productos terminados vendibles.
func (uc *ItemUseCase) ListFinishedProducts(ctx context.Context) ([]dto.InventoryItemDTO, error) {
	items, err := uc.itemRepo.ListByCategory(entity.CategoryFinishedProduct)
	if err != nil {
		return nil, fmt.Errorf("listando productos terminados: %w", err)
	}
	return dto.NewInventoryItemDTOs(items), nil
}

// ListLowStock lista los ítems activos con disponible <= punto de reorden.
func (uc *ItemUseCase) ListLowStock(ctx context.Context) ([]dto.InventoryItemDTO, error) {
	items, err := uc.itemRepo.ListLowStock()
	if err != nil {
		return nil, fmt.Errorf("listando ítems bajo reorden: %w", err)
	}
	return dto.NewInventoryItemDTOs(items), nil
}

// ListMovements devuelve el log de movimientos de un ítem, más reciente primero.
func (uc *ItemUseCase) ListMovements(ctx context.Context, id string, limit, offset int) ([]dto.MovementDTO, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando ítem: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %s: %w", id, domain.ErrNotFound)
	}
	movs, err := uc.movRepo.ListByItem(id, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listando movimientos: %w", err)
	}
	return dto.NewMovementDTOs(movs), nil
}
