package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del lote de producción. La máquina de estados transiciona
// exactamente una vez de in_progress a completed o failed; los estados
// terminales son inmutables.
const (
	BatchInProgress = "in_progress"
	BatchCompleted  = "completed"
	BatchFailed     = "failed"
)

// ProductionBatch representa una corrida de producción que convierte
// ingredientes en producto terminado.
type ProductionBatch struct {
	ID                      string
	BatchNumber             string // BATCH-YYYYMMDD-NNN
	ProductInventoryID      string
	RecipeTemplateID        *string
	BatchSize               decimal.Decimal
	Unit                    string
	StartDate               time.Time
	EstimatedCompletionDate *time.Time
	CompletionDate          *time.Time
	Status                  string
	ProductionTimeHours     *decimal.Decimal
	YieldPercentage         *decimal.Decimal
	ActualYield             *decimal.Decimal
	QualityNotes            *string
	StorageLocation         *string
	Notes                   *string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsTerminal indica si el lote ya no admite Complete/Fail.
func (b *ProductionBatch) IsTerminal() bool {
	return b.Status == BatchCompleted || b.Status == BatchFailed
}

// BatchIngredient es la foto del consumo de un ingrediente, fijada al crear el lote.
type BatchIngredient struct {
	ID                    string
	BatchID               string
	IngredientInventoryID string
	QuantityUsed          decimal.Decimal
	Unit                  string
	Notes                 *string
}
