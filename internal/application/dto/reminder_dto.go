package dto

import (
	"time"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

// SnoozeReminderRequest body para POST /api/reminders/:id/snooze.
type SnoozeReminderRequest struct {
	SnoozeUntil time.Time `json:"snooze_until"`
}

// CompleteReminderRequest body para POST /api/reminders/:id/complete.
type CompleteReminderRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ReminderDTO representación HTTP de un recordatorio, con estado derivado.
type ReminderDTO struct {
	ID           string     `json:"id"`
	BatchID      string     `json:"batch_id"`
	ReminderType string     `json:"reminder_type"`
	Message      string     `json:"message"`
	DueAt        time.Time  `json:"due_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	IsDue        bool       `json:"is_due"`
	IsUpcoming   bool       `json:"is_upcoming"`
}

// NewReminderDTO mapea la entidad, evaluando is_due/is_upcoming en now.
func NewReminderDTO(r *entity.ProductionReminder, now time.Time) ReminderDTO {
	return ReminderDTO{
		ID:           r.ID,
		BatchID:      r.BatchID,
		ReminderType: r.ReminderType,
		Message:      r.Message,
		DueAt:        r.DueAt,
		CompletedAt:  r.CompletedAt,
		SnoozedUntil: r.SnoozedUntil,
		Notes:        r.Notes,
		IsDue:        r.IsDue(now),
		IsUpcoming:   r.IsUpcoming(now),
	}
}

// NewReminderDTOs mapea una lista de recordatorios.
func NewReminderDTOs(list []*entity.ProductionReminder, now time.Time) []ReminderDTO {
	out := make([]ReminderDTO, 0, len(list))
	for _, r := range list {
		out = append(out, NewReminderDTO(r, now))
	}
	return out
}
