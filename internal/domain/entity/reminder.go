package entity

import "time"

// ProductionReminder es una acción de seguimiento programada para un lote
// (voltear, medir pH, embotellar...). DueAt se calcula una sola vez al crear
// el lote a partir del offset de la receta. Completar es terminal; posponer
// es reversible y repetible (el último snooze gana).
type ProductionReminder struct {
	ID           string
	BatchID      string
	ReminderType string
	Message      string
	DueAt        time.Time
	CompletedAt  *time.Time
	SnoozedUntil *time.Time
	Notes        *string
	CreatedAt    time.Time
}

// IsDue indica si el recordatorio está vencido y pendiente en el instante now.
func (r *ProductionReminder) IsDue(now time.Time) bool {
	if r.CompletedAt != nil {
		return false
	}
	if !now.After(r.DueAt) {
		return false
	}
	return r.SnoozedUntil == nil || now.After(*r.SnoozedUntil)
}

// IsUpcoming indica si el recordatorio aún no vence y sigue pendiente.
func (r *ProductionReminder) IsUpcoming(now time.Time) bool {
	return r.CompletedAt == nil && now.Before(r.DueAt)
}
