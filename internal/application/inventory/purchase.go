package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// RecordPurchaseUseCase registra la recepción de mercancía de un proveedor:
// una transacción, un movimiento purchase por línea, todo o nada.
type RecordPurchaseUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	log          *logger.Logger
}

// NewRecordPurchaseUseCase construye el caso de uso.
func NewRecordPurchaseUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository, log *logger.Logger) *RecordPurchaseUseCase {
	return &RecordPurchaseUseCase{txRunner: txRunner, supplierRepo: supplierRepo, log: log}
}

// RecordPurchase valida proveedor y líneas, y aplica todas las entradas de
// stock en una sola transacción. El costo unitario de cada línea sobreescribe
// el cost_per_unit del ítem (gana la última compra).
func (uc *RecordPurchaseUseCase) RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResult, error) {
	if req.SupplierID == "" {
		return nil, fmt.Errorf("supplier_id es obligatorio: %w", domain.ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("la compra no tiene líneas: %w", domain.ErrInvalidInput)
	}
	for _, line := range req.Items {
		if line.InventoryID == "" {
			return nil, fmt.Errorf("línea sin inventory_id: %w", domain.ErrInvalidInput)
		}
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %s: la cantidad debe ser positiva: %w", line.InventoryID, domain.ErrInvalidInput)
		}
		if line.UnitCost.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("línea %s: el costo unitario no puede ser negativo: %w", line.InventoryID, domain.ErrInvalidInput)
		}
	}

	supplier, err := uc.supplierRepo.GetByID(req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("consultando proveedor: %w", err)
	}
	if supplier == nil {
		return nil, fmt.Errorf("proveedor %s: %w", req.SupplierID, domain.ErrNotFound)
	}

	// Orden estable por id de ítem para que transacciones concurrentes
	// bloqueen filas en el mismo orden.
	lines := make([]dto.PurchaseLineRequest, len(req.Items))
	copy(lines, req.Items)
	sort.Slice(lines, func(i, j int) bool { return lines[i].InventoryID < lines[j].InventoryID })

	at := time.Now()
	if req.PurchaseDate != nil {
		at = *req.PurchaseDate
	}
	reason := fmt.Sprintf("compra a %s", supplier.Name)
	if req.Notes != nil && *req.Notes != "" {
		reason = fmt.Sprintf("%s: %s", reason, *req.Notes)
	}

	updated := make([]*entity.InventoryItem, 0, len(lines))
	err = uc.txRunner.Run(ctx, func(itemRepo repository.InventoryItemRepository, logRepo repository.MovementLogRepository) error {
		for _, line := range lines {
			unitCost := line.UnitCost
			item, err := Adjust(itemRepo, logRepo, line.InventoryID, line.Quantity, decimal.Zero, Movement{
				Type:        entity.MovementPurchase,
				UnitCost:    &unitCost,
				BatchNumber: line.BatchNumber,
				ExpiryDate:  line.ExpiryDate,
				Reason:      reason,
				At:          at,
			})
			if err != nil {
				return err
			}
			updated = append(updated, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("supplier_id", req.SupplierID).Int("lines", len(lines)).Msg("compra registrada")
	return &dto.PurchaseResult{
		Success:      true,
		Message:      fmt.Sprintf("compra registrada: %d líneas de %s", len(lines), supplier.Name),
		UpdatedItems: dto.NewInventoryItemDTOs(updated),
	}, nil
}
