package production

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// FailBatchUseCase cierra un lote como fallido. Los ingredientes consumidos
// no se devuelven al stock: una fermentación contaminada ya gastó su materia
// prima. Cualquier recuperación parcial se registra aparte como ajuste manual.
type FailBatchUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewFailBatchUseCase construye el caso de uso.
func NewFailBatchUseCase(txRunner TxRunner, log *logger.Logger) *FailBatchUseCase {
	return &FailBatchUseCase{txRunner: txRunner, log: log}
}

// FailBatch transiciona in_progress -> failed con razón obligatoria.
func (uc *FailBatchUseCase) FailBatch(ctx context.Context, batchID string, req dto.FailBatchRequest) (*dto.BatchResult, error) {
	if batchID == "" {
		return nil, fmt.Errorf("id de lote vacío: %w", domain.ErrInvalidInput)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("la razón del fallo es obligatoria: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	var batch *entity.ProductionBatch
	err := uc.txRunner.RunProduction(ctx, func(
		_ repository.InventoryItemRepository,
		_ repository.MovementLogRepository,
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

		batch.Status = entity.BatchFailed
		batch.CompletionDate = &now
		reason := req.Reason
		batch.QualityNotes = &reason
		if err := batchRepo.Update(batch); err != nil {
			return fmt.Errorf("marcando lote %s como fallido: %w", batch.BatchNumber, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Warn().
		Str("batch_id", batch.ID).
		Str("batch_number", batch.BatchNumber).
		Str("reason", req.Reason).
		Msg("lote marcado como fallido")
	return &dto.BatchResult{
		Success:     true,
		Message:     fmt.Sprintf("lote %s marcado como fallido", batch.BatchNumber),
		BatchID:     &batch.ID,
		BatchNumber: &batch.BatchNumber,
	}, nil
}
