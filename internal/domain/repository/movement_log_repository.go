package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

// MovementLogRepository define el puerto del log de movimientos.
// El log es append-only: no hay Update ni Delete.
type MovementLogRepository interface {
	Create(mov *entity.MovementLog) error
	ListByItem(inventoryID string, limit, offset int) ([]*entity.MovementLog, error)
	// SumByItem suma los deltas de un ítem desde su creación; debe igualar
	// su current_stock (propiedad de reconciliación).
	SumByItem(inventoryID string) (decimal.Decimal, error)
}
