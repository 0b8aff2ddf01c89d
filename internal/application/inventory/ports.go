package inventory

import (
	"context"

	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		logRepo repository.MovementLogRepository,
	) error) error
}
