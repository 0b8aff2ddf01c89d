package production

import (
	"context"
	"fmt"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// QueryUseCase sirve las lecturas del motor de producción.
type QueryUseCase struct {
	batchRepo repository.ProductionBatchRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(batchRepo repository.ProductionBatchRepository) *QueryUseCase {
	return &QueryUseCase{batchRepo: batchRepo}
}

// ListActive devuelve los lotes in_progress.
func (uc *QueryUseCase) ListActive(ctx context.Context) ([]dto.BatchDTO, error) {
	batches, err := uc.batchRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("listando lotes activos: %w", err)
	}
	return dto.NewBatchDTOs(batches), nil
}

// ListHistory devuelve lotes más recientes primero, opcionalmente filtrados
// por producto. El límite por defecto es 50 y el tope 500.
func (uc *QueryUseCase) ListHistory(ctx context.Context, productInventoryID string, limit int) ([]dto.BatchDTO, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	batches, err := uc.batchRepo.ListHistory(productInventoryID, limit)
	if err != nil {
		return nil, fmt.Errorf("listando historial de lotes: %w", err)
	}
	return dto.NewBatchDTOs(batches), nil
}

// GetBatch devuelve un lote con su foto de ingredientes.
func (uc *QueryUseCase) GetBatch(ctx context.Context, id string) (*dto.BatchDTO, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando lote: %w", err)
	}
	if batch == nil {
		return nil, fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
	}

	ingredients, err := uc.batchRepo.ListIngredients(id)
	if err != nil {
		return nil, fmt.Errorf("consultando ingredientes del lote: %w", err)
	}

	out := dto.NewBatchDTO(batch)
	out.Ingredients = make([]dto.BatchIngredientDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		out.Ingredients = append(out.Ingredients, dto.BatchIngredientDTO{
			IngredientInventoryID: ing.IngredientInventoryID,
			QuantityUsed:          ing.QuantityUsed,
			Unit:                  ing.Unit,
		})
	}
	return &out, nil
}
