package recipe

import (
	"context"
	"fmt"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// UseCase gestiona las recetas plantilla. Los documentos JSONB de ingredientes
// y recordatorios se validan en esta frontera y se reemplazan completos en
// cada update; los lotes ya creados conservan sus fotos y vencimientos.
type UseCase struct {
	recipeRepo repository.RecipeTemplateRepository
	itemRepo   repository.InventoryItemRepository
	batchRepo  repository.ProductionBatchRepository
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	recipeRepo repository.RecipeTemplateRepository,
	itemRepo repository.InventoryItemRepository,
	batchRepo repository.ProductionBatchRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{recipeRepo: recipeRepo, itemRepo: itemRepo, batchRepo: batchRepo, log: log}
}

// CreateRecipe da de alta una receta con sus documentos validados.
func (uc *UseCase) CreateRecipe(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResult, error) {
	if req.TemplateName == "" {
		return nil, fmt.Errorf("template_name es obligatorio: %w", domain.ErrInvalidInput)
	}
	if err := uc.validateDocs(req.IngredientTemplate, req.ReminderSchedule); err != nil {
		return nil, err
	}
	if req.ProductInventoryID != nil {
		if err := uc.validateProduct(*req.ProductInventoryID); err != nil {
			return nil, err
		}
	}

	t := &entity.RecipeTemplate{
		TemplateName:           req.TemplateName,
		Description:            req.Description,
		ProductInventoryID:     req.ProductInventoryID,
		DefaultBatchSize:       req.DefaultBatchSize,
		DefaultUnit:            req.DefaultUnit,
		EstimatedDurationHours: req.EstimatedDurationHours,
		IngredientTemplate:     req.IngredientTemplate,
		ReminderSchedule:       req.ReminderSchedule,
		Instructions:           req.Instructions,
		IsActive:               true,
	}
	if err := uc.recipeRepo.Create(t); err != nil {
		return nil, fmt.Errorf("creando receta: %w", err)
	}

	uc.log.Info().Str("recipe_id", t.ID).Str("name", t.TemplateName).Msg("receta creada")
	out := dto.NewRecipeDTO(t)
	return &dto.RecipeResult{Success: true, Message: "receta creada", Recipe: &out}, nil
}

// GetRecipe devuelve una receta por id.
func (uc *UseCase) GetRecipe(ctx context.Context, id string) (*dto.RecipeDTO, error) {
	t, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando receta: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("receta %s: %w", id, domain.ErrNotFound)
	}
	out := dto.NewRecipeDTO(t)
	return &out, nil
}

// UpdateRecipe actualiza una receta. Un documento presente en el request
// reemplaza el anterior completo; uno ausente se conserva tal cual.
func (uc *UseCase) UpdateRecipe(ctx context.Context, id string, req dto.UpdateRecipeRequest) (*dto.RecipeResult, error) {
	t, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando receta: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("receta %s: %w", id, domain.ErrNotFound)
	}
	if err := uc.validateDocs(req.IngredientTemplate, req.ReminderSchedule); err != nil {
		return nil, err
	}

	if req.TemplateName != nil {
		if *req.TemplateName == "" {
			return nil, fmt.Errorf("template_name no puede quedar vacío: %w", domain.ErrInvalidInput)
		}
		t.TemplateName = *req.TemplateName
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.ProductInventoryID != nil {
		if err := uc.validateProduct(*req.ProductInventoryID); err != nil {
			return nil, err
		}
		t.ProductInventoryID = req.ProductInventoryID
	}
	if req.DefaultBatchSize != nil {
		t.DefaultBatchSize = req.DefaultBatchSize
	}
	if req.DefaultUnit != nil {
		t.DefaultUnit = req.DefaultUnit
	}
	if req.EstimatedDurationHours != nil {
		t.EstimatedDurationHours = req.EstimatedDurationHours
	}
	if len(req.IngredientTemplate) > 0 {
		t.IngredientTemplate = req.IngredientTemplate
	}
	if len(req.ReminderSchedule) > 0 {
		t.ReminderSchedule = req.ReminderSchedule
	}
	if req.Instructions != nil {
		t.Instructions = req.Instructions
	}

	if err := uc.recipeRepo.Update(t); err != nil {
		return nil, fmt.Errorf("actualizando receta: %w", err)
	}
	out := dto.NewRecipeDTO(t)
	return &dto.RecipeResult{Success: true, Message: "receta actualizada", Recipe: &out}, nil
}

// DeactivateRecipe desactiva una receta (borrado blando). Se rechaza si hay
// lotes in_progress que la referencian.
func (uc *UseCase) DeactivateRecipe(ctx context.Context, id string) (*dto.OpResult, error) {
	t, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando receta: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("receta %s: %w", id, domain.ErrNotFound)
	}

	inProgress, err := uc.batchRepo.CountInProgressByRecipe(id)
	if err != nil {
		return nil, fmt.Errorf("verificando lotes activos: %w", err)
	}
	if inProgress > 0 {
		return nil, fmt.Errorf("la receta %q tiene %d lote(s) en curso: %w", t.TemplateName, inProgress, domain.ErrConflict)
	}

	if err := uc.recipeRepo.Deactivate(id); err != nil {
		return nil, fmt.Errorf("desactivando receta: %w", err)
	}
	return &dto.OpResult{Success: true, Message: "receta desactivada"}, nil
}

// ListRecipes lista las recetas activas.
func (uc *UseCase) ListRecipes(ctx context.Context) ([]dto.RecipeDTO, error) {
	list, err := uc.recipeRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("listando recetas: %w", err)
	}
	return dto.NewRecipeDTOs(list), nil
}

// validateDocs rechaza documentos malformados antes de que lleguen a la BD.
func (uc *UseCase) validateDocs(ingredients, schedule []byte) error {
	parsed, err := entity.ParseIngredientTemplate(ingredients)
	if err != nil {
		return fmt.Errorf("%s: %w", err, domain.ErrInvalidInput)
	}
	for _, ing := range parsed {
		if ing.InventoryID == "" || !ing.QuantityPerBatch.IsPositive() {
			return fmt.Errorf("plantilla de ingredientes: cada entrada necesita inventory_id y cantidad positiva: %w", domain.ErrInvalidInput)
		}
	}
	if _, err := entity.ParseReminderSchedule(schedule); err != nil {
		return fmt.Errorf("%s: %w", err, domain.ErrInvalidInput)
	}
	return nil
}

func (uc *UseCase) validateProduct(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("consultando producto: %w", err)
	}
	if item == nil {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
