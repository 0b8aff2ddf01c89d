package production

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/inventory"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/production"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// CompleteBatchUseCase cierra un lote con éxito: calcula rendimiento y
// duración, marca el estado terminal y suma el producto terminado al stock,
// en una transacción.
type CompleteBatchUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewCompleteBatchUseCase construye el caso de uso.
func NewCompleteBatchUseCase(txRunner TxRunner, log *logger.Logger) *CompleteBatchUseCase {
	return &CompleteBatchUseCase{txRunner: txRunner, log: log}
}

// CompleteBatch transiciona in_progress -> completed. El rendimiento real
// puede superar el tamaño del lote (rendimiento > 100%); lo que no puede es
// repetirse: un lote terminal rechaza la transición.
func (uc *CompleteBatchUseCase) CompleteBatch(ctx context.Context, batchID string, req dto.CompleteBatchRequest) (*dto.BatchResult, error) {
	if batchID == "" {
		return nil, fmt.Errorf("id de lote vacío: %w", domain.ErrInvalidInput)
	}
	if req.ActualYield.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("actual_yield no puede ser negativo: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	var batch *entity.ProductionBatch
	err := uc.txRunner.RunProduction(ctx, func(
		itemRepo repository.InventoryItemRepository,
		logRepo repository.MovementLogRepository,
		batchRepo repository.ProductionBatchRepository,
		_ repository.ReminderRepository,
	) error {
		var err error
		batch, err = batchRepo.GetForUpdate(batchID)
		if err != nil {
			return fmt.Errorf("bloqueando lote %s: %w", batchID, err)
		}
		if batch == nil {
			return fmt.Errorf("lote %s: %w", batchID, domain.ErrNotFound)
		}
		if batch.IsTerminal() {
			return fmt.Errorf("el lote %s ya está %s: %w", batch.BatchNumber, batch.Status, domain.ErrInvalidState)
		}

		yieldPct := production.YieldPercentage(req.ActualYield, batch.BatchSize)
		hours := production.ProductionHours(batch.StartDate, now)

		batch.Status = entity.BatchCompleted
		batch.CompletionDate = &now
		batch.ActualYield = &req.ActualYield
		batch.YieldPercentage = &yieldPct
		batch.ProductionTimeHours = &hours
		batch.QualityNotes = req.QualityNotes
		if err := batchRepo.Update(batch); err != nil {
			return fmt.Errorf("cerrando lote %s: %w", batch.BatchNumber, err)
		}

		// Un lote puede cerrarse con rendimiento cero (todo se perdió al
		// envasar); el movimiento de salida se anota igual, con delta cero,
		// para que el cierre conste en el log.
		_, err = inventory.Adjust(itemRepo, logRepo, batch.ProductInventoryID, req.ActualYield, decimal.Zero, inventory.Movement{
			Type:        entity.MovementProductionOutput,
			BatchNumber: &batch.BatchNumber,
			Reason:      fmt.Sprintf("salida del lote %s", batch.BatchNumber),
			At:          now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("batch_id", batch.ID).
		Str("batch_number", batch.BatchNumber).
		Str("actual_yield", req.ActualYield.String()).
		Msg("lote completado")
	return &dto.BatchResult{
		Success:     true,
		Message:     fmt.Sprintf("lote %s completado", batch.BatchNumber),
		BatchID:     &batch.ID,
		BatchNumber: &batch.BatchNumber,
	}, nil
}
