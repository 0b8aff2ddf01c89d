package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// UseCase gestiona el ciclo de vida de los recordatorios ya materializados.
// Completar es terminal e idempotente; posponer es repetible y el último
// snooze pisa al anterior.
type UseCase struct {
	reminderRepo repository.ReminderRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(reminderRepo repository.ReminderRepository, log *logger.Logger) *UseCase {
	return &UseCase{reminderRepo: reminderRepo, log: log}
}

// Snooze pospone un recordatorio pendiente hasta el instante dado.
// Uno completado ya no se puede posponer.
func (uc *UseCase) Snooze(ctx context.Context, id string, req dto.SnoozeReminderRequest) (*dto.OpResult, error) {
	if req.SnoozeUntil.IsZero() {
		return nil, fmt.Errorf("snooze_until es obligatorio: %w", domain.ErrInvalidInput)
	}

	r, err := uc.reminderRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando recordatorio: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("recordatorio %s: %w", id, domain.ErrNotFound)
	}
	if r.CompletedAt != nil {
		return nil, fmt.Errorf("el recordatorio ya está completado: %w", domain.ErrInvalidState)
	}

	if err := uc.reminderRepo.SetSnooze(id, req.SnoozeUntil); err != nil {
		return nil, fmt.Errorf("posponiendo recordatorio: %w", err)
	}
	return &dto.OpResult{Success: true, Message: fmt.Sprintf("recordatorio pospuesto hasta %s", req.SnoozeUntil.Format(time.RFC3339))}, nil
}

// Complete marca un recordatorio como hecho. Completar dos veces responde
// éxito sin escribir de nuevo: la marca original se conserva.
func (uc *UseCase) Complete(ctx context.Context, id string, req dto.CompleteReminderRequest) (*dto.OpResult, error) {
	r, err := uc.reminderRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando recordatorio: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("recordatorio %s: %w", id, domain.ErrNotFound)
	}
	if r.CompletedAt != nil {
		return &dto.OpResult{Success: true, Message: "el recordatorio ya estaba completado"}, nil
	}

	if err := uc.reminderRepo.SetCompleted(id, time.Now(), req.Notes); err != nil {
		return nil, fmt.Errorf("completando recordatorio: %w", err)
	}
	uc.log.Info().Str("reminder_id", id).Str("type", r.ReminderType).Msg("recordatorio completado")
	return &dto.OpResult{Success: true, Message: "recordatorio completado"}, nil
}

// Pending devuelve los recordatorios no completados ordenados por vencimiento,
// con is_due/is_upcoming evaluados en el momento de la consulta.
func (uc *UseCase) Pending(ctx context.Context) ([]dto.ReminderDTO, error) {
	list, err := uc.reminderRepo.ListPending()
	if err != nil {
		return nil, fmt.Errorf("listando recordatorios pendientes: %w", err)
	}
	return dto.NewReminderDTOs(list, time.Now()), nil
}

// ByBatch devuelve todos los recordatorios de un lote, completados incluidos.
func (uc *UseCase) ByBatch(ctx context.Context, batchID string) ([]dto.ReminderDTO, error) {
	list, err := uc.reminderRepo.ListByBatch(batchID)
	if err != nil {
		return nil, fmt.Errorf("listando recordatorios del lote: %w", err)
	}
	return dto.NewReminderDTOs(list, time.Now()), nil
}
