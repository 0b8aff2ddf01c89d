package production

import (
	"context"

	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el motor de producción atados a esa tx. El
// consumo de ingredientes, el alta del lote y la siembra de recordatorios
// comparten transacción: o pasa todo o no pasa nada.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		logRepo repository.MovementLogRepository,
		batchRepo repository.ProductionBatchRepository,
		reminderRepo repository.ReminderRepository,
	) error) error
}
