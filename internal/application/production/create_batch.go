package production

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/inventory"
	"github.com/jhoicas/Fermentario-api/internal/application/reminder"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/production"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// CreateBatchUseCase arranca un lote de producción: numera el lote, consume
// los ingredientes a través del ledger, congela la foto de consumo y siembra
// los recordatorios de la receta, todo en una transacción.
type CreateBatchUseCase struct {
	txRunner   TxRunner
	itemRepo   repository.InventoryItemRepository
	recipeRepo repository.RecipeTemplateRepository
	log        *logger.Logger
}

// NewCreateBatchUseCase construye el caso de uso.
func NewCreateBatchUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	recipeRepo repository.RecipeTemplateRepository,
	log *logger.Logger,
) *CreateBatchUseCase {
	return &CreateBatchUseCase{txRunner: txRunner, itemRepo: itemRepo, recipeRepo: recipeRepo, log: log}
}

// CreateBatch valida producto, receta e ingredientes y ejecuta el arranque
// atómico. Las cantidades consumidas son siempre las del request: la receta
// no se recalcula aquí, solo aporta el cronograma de recordatorios.
func (uc *CreateBatchUseCase) CreateBatch(ctx context.Context, req dto.CreateBatchRequest) (*dto.BatchResult, error) {
	if req.ProductInventoryID == "" {
		return nil, fmt.Errorf("product_inventory_id es obligatorio: %w", domain.ErrInvalidInput)
	}
	if !req.BatchSize.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("batch_size debe ser positivo: %w", domain.ErrInvalidInput)
	}
	if req.Unit == "" {
		return nil, fmt.Errorf("unit es obligatoria: %w", domain.ErrInvalidInput)
	}
	if len(req.Ingredients) == 0 {
		return nil, fmt.Errorf("el lote requiere al menos un ingrediente: %w", domain.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if ing.InventoryID == "" {
			return nil, fmt.Errorf("ingrediente sin inventory_id: %w", domain.ErrInvalidInput)
		}
		if seen[ing.InventoryID] {
			return nil, fmt.Errorf("ingrediente %s repetido: %w", ing.InventoryID, domain.ErrInvalidInput)
		}
		seen[ing.InventoryID] = true
		if !ing.QuantityUsed.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("ingrediente %s: la cantidad debe ser positiva: %w", ing.InventoryID, domain.ErrInvalidInput)
		}
	}

	product, err := uc.itemRepo.GetByID(req.ProductInventoryID)
	if err != nil {
		return nil, fmt.Errorf("consultando producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", req.ProductInventoryID, domain.ErrNotFound)
	}
	if !product.IsActive {
		return nil, fmt.Errorf("el ítem %q está inactivo: %w", product.Name, domain.ErrInvalidInput)
	}

	// El cronograma se lee y valida antes de abrir la transacción; un
	// documento corrupto no debe costar un rollback.
	var schedule []entity.ScheduleEntry
	if req.RecipeTemplateID != nil {
		recipe, err := uc.recipeRepo.GetByID(*req.RecipeTemplateID)
		if err != nil {
			return nil, fmt.Errorf("consultando receta: %w", err)
		}
		if recipe == nil {
			return nil, fmt.Errorf("receta %s: %w", *req.RecipeTemplateID, domain.ErrNotFound)
		}
		schedule, err = entity.ParseReminderSchedule(recipe.ReminderSchedule)
		if err != nil {
			return nil, fmt.Errorf("receta %s: %w", recipe.TemplateName, err)
		}
	}

	// Orden estable por id de ítem para que lotes concurrentes bloqueen
	// filas en el mismo orden.
	ingredients := make([]dto.BatchIngredientRequest, len(req.Ingredients))
	copy(ingredients, req.Ingredients)
	sort.Slice(ingredients, func(i, j int) bool { return ingredients[i].InventoryID < ingredients[j].InventoryID })

	now := time.Now()
	batch := &entity.ProductionBatch{
		ProductInventoryID:      req.ProductInventoryID,
		RecipeTemplateID:        req.RecipeTemplateID,
		BatchSize:               req.BatchSize,
		Unit:                    req.Unit,
		StartDate:               now,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
		Status:                  entity.BatchInProgress,
		StorageLocation:         req.StorageLocation,
		Notes:                   req.Notes,
	}

	err = uc.txRunner.RunProduction(ctx, func(
		itemRepo repository.InventoryItemRepository,
		logRepo repository.MovementLogRepository,
		batchRepo repository.ProductionBatchRepository,
		reminderRepo repository.ReminderRepository,
	) error {
		last, err := batchRepo.LastNumberWithPrefix(production.NumberPrefix(production.BatchPrefix, now))
		if err != nil {
			return fmt.Errorf("consultando numeración de lotes: %w", err)
		}
		batch.BatchNumber = production.NextNumber(production.BatchPrefix, now, last)

		if err := batchRepo.Create(batch); err != nil {
			return fmt.Errorf("creando lote: %w", err)
		}

		for _, ing := range ingredients {
			item, err := inventory.Adjust(itemRepo, logRepo, ing.InventoryID, ing.QuantityUsed.Neg(), decimal.Zero, inventory.Movement{
				Type:        entity.MovementProductionConsume,
				BatchNumber: &batch.BatchNumber,
				Reason:      fmt.Sprintf("consumo del lote %s", batch.BatchNumber),
				At:          now,
			})
			if err != nil {
				return err
			}
			snapshot := &entity.BatchIngredient{
				BatchID:               batch.ID,
				IngredientInventoryID: ing.InventoryID,
				QuantityUsed:          ing.QuantityUsed,
				Unit:                  item.Unit,
			}
			if err := batchRepo.AddIngredient(snapshot); err != nil {
				return fmt.Errorf("congelando ingrediente %s: %w", ing.InventoryID, err)
			}
		}

		return reminder.Materialize(reminderRepo, batch.ID, now, schedule)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("batch_id", batch.ID).
		Str("batch_number", batch.BatchNumber).
		Int("ingredients", len(ingredients)).
		Msg("lote de producción iniciado")
	return &dto.BatchResult{
		Success:     true,
		Message:     fmt.Sprintf("lote %s iniciado", batch.BatchNumber),
		BatchID:     &batch.ID,
		BatchNumber: &batch.BatchNumber,
	}, nil
}
