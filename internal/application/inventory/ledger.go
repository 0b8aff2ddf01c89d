package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// Movement describe el movimiento que acompaña una mutación de stock.
// El delta con signo no va aquí: es el argumento deltaCurrent de Adjust.
type Movement struct {
	Type        string
	UnitCost    *decimal.Decimal
	BatchNumber *string
	ExpiryDate  *time.Time
	Reason      string
	At          time.Time
}

// Adjust es la única vía sancionada para mutar stock. Bloquea la fila del
// ítem (SELECT FOR UPDATE), aplica los deltas, verifica el invariante
// 0 <= reserved <= current, actualiza el par de stock, sobreescribe el costo
// unitario si el movimiento es una compra con costo, y anota una entrada
// append-only en el log. Debe llamarse con repositorios atados a la
// transacción del caller; un error deja la transacción lista para rollback.
func Adjust(
	itemRepo repository.InventoryItemRepository,
	logRepo repository.MovementLogRepository,
	inventoryID string,
	deltaCurrent, deltaReserved decimal.Decimal,
	mov Movement,
) (*entity.InventoryItem, error) {
	item, err := itemRepo.GetForUpdate(inventoryID)
	if err != nil {
		return nil, fmt.Errorf("bloqueando ítem %s: %w", inventoryID, err)
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %s: %w", inventoryID, domain.ErrNotFound)
	}

	newCurrent := item.CurrentStock.Add(deltaCurrent)
	newReserved := item.ReservedStock.Add(deltaReserved)
	if newReserved.LessThan(decimal.Zero) || newCurrent.LessThan(newReserved) {
		// La demanda sobre el disponible: lo que baja current más lo que
		// sube reserved.
		demanded := deltaReserved.Sub(deltaCurrent)
		return nil, fmt.Errorf(
			"%s: disponible %s, se requieren %s de %s: %w",
			item.Name, item.CurrentStock.Sub(item.ReservedStock), demanded, item.Unit,
			domain.ErrInsufficientStock,
		)
	}

	if err := itemRepo.UpdateStock(inventoryID, newCurrent, newReserved); err != nil {
		return nil, fmt.Errorf("actualizando stock de %s: %w", inventoryID, err)
	}
	if mov.Type == entity.MovementPurchase && mov.UnitCost != nil {
		if err := itemRepo.UpdateCost(inventoryID, *mov.UnitCost); err != nil {
			return nil, fmt.Errorf("actualizando costo de %s: %w", inventoryID, err)
		}
		item.CostPerUnit = mov.UnitCost
	}

	at := mov.At
	if at.IsZero() {
		at = time.Now()
	}
	log := &entity.MovementLog{
		InventoryID: inventoryID,
		Type:        mov.Type,
		Quantity:    deltaCurrent,
		UnitCost:    mov.UnitCost,
		BatchNumber: mov.BatchNumber,
		ExpiryDate:  mov.ExpiryDate,
		Reason:      mov.Reason,
		CreatedAt:   at,
	}
	if err := logRepo.Create(log); err != nil {
		return nil, fmt.Errorf("anotando movimiento de %s: %w", inventoryID, err)
	}

	item.CurrentStock = newCurrent
	item.ReservedStock = newReserved
	item.AvailableStock = newCurrent.Sub(newReserved)
	item.UpdatedAt = at
	return item, nil
}
