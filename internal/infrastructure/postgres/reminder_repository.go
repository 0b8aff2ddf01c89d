package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

var _ repository.ReminderRepository = (*ReminderRepo)(nil)

const reminderColumns = `
	id, batch_id, reminder_type, message, due_at, completed_at, snoozed_until,
	notes, created_at`

// ReminderRepo implementación de ReminderRepository sobre PostgreSQL (usable con pool o tx).
type ReminderRepo struct {
	q Querier
}

// NewReminderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReminderRepository(q Querier) *ReminderRepo {
	return &ReminderRepo{q: q}
}

func scanReminder(row pgx.Row) (*entity.ProductionReminder, error) {
	var rem entity.ProductionReminder
	err := row.Scan(
		&rem.ID, &rem.BatchID, &rem.ReminderType, &rem.Message, &rem.DueAt,
		&rem.CompletedAt, &rem.SnoozedUntil, &rem.Notes, &rem.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

// Create persiste un recordatorio con su vencimiento ya fijado.
func (r *ReminderRepo) Create(rem *entity.ProductionReminder) error {
	if rem.ID == "" {
		rem.ID = uuid.New().String()
	}
	query := `
		INSERT INTO production_reminders (id, batch_id, reminder_type, message,
			due_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rem.ID, rem.BatchID, rem.ReminderType, rem.Message, rem.DueAt, rem.Notes, rem.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// GetByID obtiene un recordatorio por ID.
func (r *ReminderRepo) GetByID(id string) (*entity.ProductionReminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM production_reminders WHERE id = $1`
	rem, err := scanReminder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	return rem, nil
}

// ListPending lista los no completados por vencimiento ascendente.
func (r *ReminderRepo) ListPending() ([]*entity.ProductionReminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM production_reminders
		WHERE completed_at IS NULL ORDER BY due_at`
	return r.list(query)
}

// ListByBatch lista todos los recordatorios de un lote, completados incluidos.
func (r *ReminderRepo) ListByBatch(batchID string) ([]*entity.ProductionReminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM production_reminders
		WHERE batch_id = $1 ORDER BY due_at`
	return r.list(query, batchID)
}

func (r *ReminderRepo) list(query string, args ...any) ([]*entity.ProductionReminder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	var rems []*entity.ProductionReminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		rems = append(rems, rem)
	}
	return rems, rows.Err()
}

// SetSnooze escribe el aplazamiento; un snooze posterior pisa al anterior.
func (r *ReminderRepo) SetSnooze(id string, until time.Time) error {
	query := `UPDATE production_reminders SET snoozed_until = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, until)
	if err != nil {
		return fmt.Errorf("snooze reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetCompleted marca el recordatorio como hecho. El guard completed_at IS NULL
// conserva la marca original si dos completados compiten.
func (r *ReminderRepo) SetCompleted(id string, at time.Time, notes *string) error {
	query := `
		UPDATE production_reminders
		SET completed_at = $2, notes = COALESCE($3, notes)
		WHERE id = $1 AND completed_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id, at, notes)
	if err != nil {
		return fmt.Errorf("complete reminder: %w", err)
	}
	return nil
}
