package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

var _ repository.MovementLogRepository = (*MovementLogRepo)(nil)

// MovementLogRepo implementación de MovementLogRepository sobre PostgreSQL.
// Solo INSERT y SELECT: el log es append-only.
type MovementLogRepo struct {
	q Querier
}

// NewMovementLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementLogRepository(q Querier) *MovementLogRepo {
	return &MovementLogRepo{q: q}
}

// Create anota una entrada del log.
func (r *MovementLogRepo) Create(mov *entity.MovementLog) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, inventory_id, movement_type, quantity,
			unit_cost, batch_number, expiry_date, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.InventoryID, mov.Type, mov.Quantity,
		mov.UnitCost, mov.BatchNumber, mov.ExpiryDate, mov.Reason, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByItem lista los movimientos de un ítem, más reciente primero.
func (r *MovementLogRepo) ListByItem(inventoryID string, limit, offset int) ([]*entity.MovementLog, error) {
	query := `
		SELECT id, inventory_id, movement_type, quantity, unit_cost, batch_number,
			expiry_date, reason, created_at
		FROM inventory_movements
		WHERE inventory_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, inventoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movs []*entity.MovementLog
	for rows.Next() {
		var m entity.MovementLog
		if err := rows.Scan(
			&m.ID, &m.InventoryID, &m.Type, &m.Quantity, &m.UnitCost,
			&m.BatchNumber, &m.ExpiryDate, &m.Reason, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movs = append(movs, &m)
	}
	return movs, rows.Err()
}

// SumByItem suma los deltas de un ítem. Debe igualar su current_stock si el
// ítem nació con stock cero (propiedad de reconciliación del ledger).
func (r *MovementLogRepo) SumByItem(inventoryID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM inventory_movements WHERE inventory_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, inventoryID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}
