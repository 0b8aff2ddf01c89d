package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
)

// RegisterAdjustmentUseCase aplica correcciones manuales de stock (conteos
// físicos, mermas) a través del mismo ledger que compras y producción.
type RegisterAdjustmentUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegisterAdjustmentUseCase construye el caso de uso.
func NewRegisterAdjustmentUseCase(txRunner TxRunner, log *logger.Logger) *RegisterAdjustmentUseCase {
	return &RegisterAdjustmentUseCase{txRunner: txRunner, log: log}
}

// RegisterAdjustment registra un movimiento adjustment (delta con signo) o
// waste (cantidad positiva que siempre resta). La razón es obligatoria: un
// ajuste sin explicación no sirve para auditar.
func (uc *RegisterAdjustmentUseCase) RegisterAdjustment(ctx context.Context, req dto.AdjustmentRequest) (*dto.ItemResult, error) {
	if req.InventoryID == "" {
		return nil, fmt.Errorf("inventory_id es obligatorio: %w", domain.ErrInvalidInput)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("la razón del ajuste es obligatoria: %w", domain.ErrInvalidInput)
	}
	if req.Quantity.IsZero() {
		return nil, fmt.Errorf("la cantidad no puede ser cero: %w", domain.ErrInvalidInput)
	}

	var delta decimal.Decimal
	switch req.Type {
	case entity.MovementAdjustment:
		delta = req.Quantity
	case entity.MovementWaste:
		if !req.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("waste lleva cantidad positiva (lo descartado): %w", domain.ErrInvalidInput)
		}
		delta = req.Quantity.Neg()
	default:
		return nil, fmt.Errorf("tipo de ajuste %q no soportado: %w", req.Type, domain.ErrInvalidInput)
	}

	var updated *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryItemRepository, logRepo repository.MovementLogRepository) error {
		item, err := Adjust(itemRepo, logRepo, req.InventoryID, delta, decimal.Zero, Movement{
			Type:   req.Type,
			Reason: req.Reason,
			At:     time.Now(),
		})
		if err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("inventory_id", req.InventoryID).Str("type", req.Type).Msg("ajuste de stock registrado")
	itemDTO := dto.NewInventoryItemDTO(updated)
	return &dto.ItemResult{Success: true, Message: "ajuste registrado", Item: &itemDTO}, nil
}
