package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/inventory"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/production"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// CreateSaleUseCase registra una venta: numera el documento, inserta cabecera
// y líneas y descuenta el stock de cada producto, todo en una transacción.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	log          *logger.Logger
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner, customerRepo repository.CustomerRepository, log *logger.Logger) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, customerRepo: customerRepo, log: log}
}

// CreateSale valida cliente y líneas y ejecuta la venta atómica.
// total = subtotal + impuesto - descuento, sin recorte: un descuento mayor
// que el subtotal produce un total negativo y se registra tal cual.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResult, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("la venta no tiene líneas: %w", domain.ErrInvalidInput)
	}
	for _, line := range req.Items {
		if line.InventoryID == "" {
			return nil, fmt.Errorf("línea sin inventory_id: %w", domain.ErrInvalidInput)
		}
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %s: la cantidad debe ser positiva: %w", line.InventoryID, domain.ErrInvalidInput)
		}
		if line.UnitPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %s: el precio no puede ser negativo: %w", line.InventoryID, domain.ErrInvalidInput)
		}
	}

	var customerName string
	if req.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("consultando cliente: %w", err)
		}
		if customer == nil {
			return nil, fmt.Errorf("cliente %s: %w", *req.CustomerID, domain.ErrNotFound)
		}
		customerName = customer.Name
	}

	subtotal := decimal.Zero
	for _, line := range req.Items {
		subtotal = subtotal.Add(line.Quantity.Mul(line.UnitPrice))
	}
	tax := decimal.Zero
	if req.TaxAmount != nil {
		tax = *req.TaxAmount
	}
	discount := decimal.Zero
	if req.DiscountAmount != nil {
		discount = *req.DiscountAmount
	}
	if tax.LessThan(decimal.Zero) || discount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("impuesto y descuento no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	total := subtotal.Add(tax).Sub(discount)

	at := time.Now()
	if req.SaleDate != nil {
		at = *req.SaleDate
	}
	status := entity.PaymentCompleted
	if req.PaymentStatus != nil {
		switch *req.PaymentStatus {
		case entity.PaymentCompleted, entity.PaymentPending, entity.PaymentRefunded:
			status = *req.PaymentStatus
		default:
			return nil, fmt.Errorf("estado de pago %q no soportado: %w", *req.PaymentStatus, domain.ErrInvalidInput)
		}
	}

	// Orden estable por id de ítem para que ventas concurrentes bloqueen
	// filas en el mismo orden.
	lines := make([]dto.SaleLineRequest, len(req.Items))
	copy(lines, req.Items)
	sort.Slice(lines, func(i, j int) bool { return lines[i].InventoryID < lines[j].InventoryID })

	sale := &entity.Sale{
		CustomerID:     req.CustomerID,
		SaleDate:       at,
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		TotalAmount:    total,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  status,
		Notes:          req.Notes,
	}

	updated := make([]*entity.InventoryItem, 0, len(lines))
	err := uc.txRunner.RunSale(ctx, func(
		itemRepo repository.InventoryItemRepository,
		logRepo repository.MovementLogRepository,
		saleRepo repository.SaleRepository,
	) error {
		last, err := saleRepo.LastNumberWithPrefix(production.NumberPrefix(production.SalePrefix, at))
		if err != nil {
			return fmt.Errorf("consultando numeración de ventas: %w", err)
		}
		sale.SaleNumber = production.NextNumber(production.SalePrefix, at, last)

		if err := saleRepo.Create(sale); err != nil {
			return fmt.Errorf("creando venta: %w", err)
		}

		reason := fmt.Sprintf("venta %s", sale.SaleNumber)
		if customerName != "" {
			reason = fmt.Sprintf("%s a %s", reason, customerName)
		}
		for _, line := range lines {
			item, err := inventory.Adjust(itemRepo, logRepo, line.InventoryID, line.Quantity.Neg(), decimal.Zero, inventory.Movement{
				Type:   entity.MovementSale,
				Reason: reason,
				At:     at,
			})
			if err != nil {
				return err
			}
			updated = append(updated, item)

			saleItem := &entity.SaleItem{
				SaleID:      sale.ID,
				InventoryID: line.InventoryID,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				LineTotal:   line.Quantity.Mul(line.UnitPrice),
				Notes:       line.Notes,
			}
			if err := saleRepo.AddItem(saleItem); err != nil {
				return fmt.Errorf("agregando línea de %s: %w", line.InventoryID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("sale_number", sale.SaleNumber).
		Str("total", total.String()).
		Msg("venta registrada")
	return &dto.SaleResult{
		Success:      true,
		Message:      fmt.Sprintf("venta %s registrada", sale.SaleNumber),
		SaleID:       &sale.ID,
		SaleNumber:   &sale.SaleNumber,
		UpdatedItems: dto.NewInventoryItemDTOs(updated),
	}, nil
}
