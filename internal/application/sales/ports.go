package sales

import (
	"context"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de ventas atados a esa tx. La cabecera, las líneas y los
// descuentos de stock comparten transacción.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		logRepo repository.MovementLogRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptGenerator produce el recibo PDF de una venta.
type ReceiptGenerator interface {
	Generate(sale dto.SaleDTO, customerName string) ([]byte, error)
}
