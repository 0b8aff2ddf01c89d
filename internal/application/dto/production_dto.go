package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

// BatchIngredientRequest línea de ingrediente al crear un lote.
type BatchIngredientRequest struct {
	InventoryID  string          `json:"inventory_id"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
}

// CreateBatchRequest body para POST /api/production/batches.
// Las cantidades de ingredientes vienen del caller aunque haya receta:
// la receta solo pre-llena el formulario y siembra recordatorios.
type CreateBatchRequest struct {
	ProductInventoryID      string                   `json:"product_inventory_id"`
	RecipeTemplateID        *string                  `json:"recipe_template_id,omitempty"`
	BatchSize               decimal.Decimal          `json:"batch_size"`
	Unit                    string                   `json:"unit"`
	EstimatedCompletionDate *time.Time               `json:"estimated_completion_date,omitempty"`
	StorageLocation         *string                  `json:"storage_location,omitempty"`
	Ingredients             []BatchIngredientRequest `json:"ingredients"`
	Notes                   *string                  `json:"notes,omitempty"`
}

// CompleteBatchRequest body para POST /api/production/batches/:id/complete.
type CompleteBatchRequest struct {
	ActualYield  decimal.Decimal `json:"actual_yield"`
	QualityNotes *string         `json:"quality_notes,omitempty"`
}

// FailBatchRequest body para POST /api/production/batches/:id/fail.
type FailBatchRequest struct {
	Reason string `json:"reason"`
}

// BatchResult respuesta de las mutaciones de lote.
type BatchResult struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	BatchID     *string `json:"batch_id,omitempty"`
	BatchNumber *string `json:"batch_number,omitempty"`
}

// BatchDTO representación HTTP de un lote.
type BatchDTO struct {
	ID                      string               `json:"id"`
	BatchNumber             string               `json:"batch_number"`
	ProductInventoryID      string               `json:"product_inventory_id"`
	RecipeTemplateID        *string              `json:"recipe_template_id,omitempty"`
	BatchSize               decimal.Decimal      `json:"batch_size"`
	Unit                    string               `json:"unit"`
	StartDate               time.Time            `json:"start_date"`
	EstimatedCompletionDate *time.Time           `json:"estimated_completion_date,omitempty"`
	CompletionDate          *time.Time           `json:"completion_date,omitempty"`
	Status                  string               `json:"status"`
	ProductionTimeHours     *decimal.Decimal     `json:"production_time_hours,omitempty"`
	YieldPercentage         *decimal.Decimal     `json:"yield_percentage,omitempty"`
	ActualYield             *decimal.Decimal     `json:"actual_yield,omitempty"`
	QualityNotes            *string              `json:"quality_notes,omitempty"`
	StorageLocation         *string              `json:"storage_location,omitempty"`
	Notes                   *string              `json:"notes,omitempty"`
	Ingredients             []BatchIngredientDTO `json:"ingredients,omitempty"`
}

// BatchIngredientDTO foto del consumo de un ingrediente.
type BatchIngredientDTO struct {
	IngredientInventoryID string          `json:"ingredient_inventory_id"`
	QuantityUsed          decimal.Decimal `json:"quantity_used"`
	Unit                  string          `json:"unit"`
}

// NewBatchDTO mapea la entidad al DTO (sin ingredientes).
func NewBatchDTO(b *entity.ProductionBatch) BatchDTO {
	return BatchDTO{
		ID:                      b.ID,
		BatchNumber:             b.BatchNumber,
		ProductInventoryID:      b.ProductInventoryID,
		RecipeTemplateID:        b.RecipeTemplateID,
		BatchSize:               b.BatchSize,
		Unit:                    b.Unit,
		StartDate:               b.StartDate,
		EstimatedCompletionDate: b.EstimatedCompletionDate,
		CompletionDate:          b.CompletionDate,
		Status:                  b.Status,
		ProductionTimeHours:     b.ProductionTimeHours,
		YieldPercentage:         b.YieldPercentage,
		ActualYield:             b.ActualYield,
		QualityNotes:            b.QualityNotes,
		StorageLocation:         b.StorageLocation,
		Notes:                   b.Notes,
	}
}

// NewBatchDTOs mapea una lista de lotes.
func NewBatchDTOs(batches []*entity.ProductionBatch) []BatchDTO {
	out := make([]BatchDTO, 0, len(batches))
	for _, b := range batches {
		out = append(out, NewBatchDTO(b))
	}
	return out
}
