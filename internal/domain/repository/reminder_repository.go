package repository

import (
	"time"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

// ReminderRepository define el puerto de persistencia para recordatorios de producción.
type ReminderRepository interface {
	Create(r *entity.ProductionReminder) error
	GetByID(id string) (*entity.ProductionReminder, error)
	// ListPending devuelve los no completados (vencidos y próximos), por due_at.
	ListPending() ([]*entity.ProductionReminder, error)
	ListByBatch(batchID string) ([]*entity.ProductionReminder, error)
	SetSnooze(id string, until time.Time) error
	SetCompleted(id string, at time.Time, notes *string) error
}
