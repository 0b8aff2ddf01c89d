package reminder

import (
	"fmt"
	"time"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// Materialize crea las filas de recordatorio de un lote a partir del
// cronograma de su receta. Los vencimientos se fijan una sola vez, sumando el
// offset de cada entrada al inicio del lote; editar la receta después no los
// mueve. Debe llamarse con el repositorio atado a la transacción que crea el lote.
func Materialize(reminderRepo repository.ReminderRepository, batchID string, start time.Time, entries []entity.ScheduleEntry) error {
	for _, e := range entries {
		r := &entity.ProductionReminder{
			BatchID:      batchID,
			ReminderType: e.ReminderType,
			Message:      e.Message,
			DueAt:        e.Offset.DueAt(start),
			CreatedAt:    start,
		}
		if err := reminderRepo.Create(r); err != nil {
			return fmt.Errorf("sembrando recordatorio %q: %w", e.ReminderType, err)
		}
	}
	return nil
}
