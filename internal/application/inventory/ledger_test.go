package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fermentario-api/internal/application/inventory"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

func TestAdjust_AplicaDeltaYAnotaMovimiento(t *testing.T) {
	store := newMemStore()
	seedItem(store, "itm-sal", "Sal marina", "ingredient", "10", "0")
	itemRepo := &fakeItemRepo{store: store}
	logRepo := &fakeLogRepo{store: store}

	item, err := inventory.Adjust(itemRepo, logRepo, "itm-sal", dec("5"), decimal.Zero, inventory.Movement{
		Type:   entity.MovementAdjustment,
		Reason: "conteo físico",
	})
	require.NoError(t, err)
	assert.True(t, item.CurrentStock.Equal(dec("15")))
	assert.True(t, item.AvailableStock.Equal(dec("15")))
	requireStock(t, store, "itm-sal", "15", "0")

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementAdjustment, mov.Type)
	assert.True(t, mov.Quantity.Equal(dec("5")), "el log guarda el delta con signo")
	assert.Equal(t, "conteo físico", mov.Reason)
}

func TestAdjust_RechazaStockInsuficiente(t *testing.T) {
	store := newMemStore()
	seedItem(store, "itm-sal", "Sal marina", "ingredient", "3", "0")
	itemRepo := &fakeItemRepo{store: store}
	logRepo := &fakeLogRepo{store: store}

	_, err := inventory.Adjust(itemRepo, logRepo, "itm-sal", dec("-5"), decimal.Zero, inventory.Movement{
		Type:   entity.MovementSale,
		Reason: "venta",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Sal marina", "el mensaje debe nombrar el ítem")

	requireStock(t, store, "itm-sal", "3", "0")
	assert.Empty(t, store.movements, "un rechazo no anota movimiento")
}

func TestAdjust_RespetaElReservado(t *testing.T) {
	// 10 en bodega pero 8 reservados: solo hay 2 disponibles.
	store := newMemStore()
	seedItem(store, "itm-repollo", "Repollo", "ingredient", "10", "8")
	itemRepo := &fakeItemRepo{store: store}
	logRepo := &fakeLogRepo{store: store}

	_, err := inventory.Adjust(itemRepo, logRepo, "itm-repollo", dec("-3"), decimal.Zero, inventory.Movement{
		Type: entity.MovementSale, Reason: "venta",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = inventory.Adjust(itemRepo, logRepo, "itm-repollo", dec("-2"), decimal.Zero, inventory.Movement{
		Type: entity.MovementSale, Reason: "venta",
	})
	require.NoError(t, err)
	requireStock(t, store, "itm-repollo", "8", "8")
}

func TestAdjust_MensajeReportaDemandaDeReserva(t *testing.T) {
	store := newMemStore()
	seedItem(store, "itm-repollo", "Repollo", "ingredient", "10", "8")
	itemRepo := &fakeItemRepo{store: store}
	logRepo := &fakeLogRepo{store: store}

	// Reservar 5 con solo 2 disponibles: el mensaje nombra la demanda real,
	// no el delta de current (que aquí es cero).
	_, err := inventory.Adjust(itemRepo, logRepo, "itm-repollo", decimal.Zero, dec("5"), inventory.Movement{
		Type: entity.MovementAdjustment, Reason: "reserva para pedido",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "se requieren 5")
	assert.Contains(t, err.Error(), "disponible 2")
}

func TestAdjust_ReservadoNoPuedeSerNegativo(t *testing.T) {
	store := newMemStore()
	seedItem(store, "itm-sal", "Sal marina", "ingredient", "10", "0")
	itemRepo := &fakeItemRepo{store: store}
	logRepo := &fakeLogRepo{store: store}

	_, err := inventory.Adjust(itemRepo, logRepo, "itm-sal", decimal.Zero, dec("-1"), inventory.Movement{
		Type: entity.MovementAdjustment, Reason: "liberar reserva inexistente",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestAdjust_ItemInexistente(t *testing.T) {
	store := newMemStore()
	itemRepo := &fakeItemRepo{store: store}
	logRepo := &fakeLogRepo{store: store}

	_, err := inventory.Adjust(itemRepo, logRepo, "no-existe", dec("1"), decimal.Zero, inventory.Movement{
		Type: entity.MovementAdjustment, Reason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_CostoSoloEnCompras(t *testing.T) {
	store := newMemStore()
	item := seedItem(store, "itm-sal", "Sal marina", "ingredient", "10", "0")
	oldCost := dec("2.00")
	item.CostPerUnit = &oldCost
	itemRepo := &fakeItemRepo{store: store}
	logRepo := &fakeLogRepo{store: store}

	// Una compra con costo sobreescribe (gana la última compra).
	newCost := dec("2.75")
	updated, err := inventory.Adjust(itemRepo, logRepo, "itm-sal", dec("5"), decimal.Zero, inventory.Movement{
		Type:     entity.MovementPurchase,
		UnitCost: &newCost,
		Reason:   "compra",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CostPerUnit)
	assert.True(t, updated.CostPerUnit.Equal(newCost))

	// Un movimiento no-compra con costo informativo no toca el cost_per_unit.
	saleCost := dec("9.99")
	_, err = inventory.Adjust(itemRepo, logRepo, "itm-sal", dec("-1"), decimal.Zero, inventory.Movement{
		Type:     entity.MovementSale,
		UnitCost: &saleCost,
		Reason:   "venta",
	})
	require.NoError(t, err)
	assert.True(t, store.items["itm-sal"].CostPerUnit.Equal(newCost),
		"solo las compras actualizan el costo unitario")
}

func TestAdjust_ReconciliacionSumaDeltas(t *testing.T) {
	// La suma de los deltas del log debe reproducir el current_stock.
	store := newMemStore()
	seedItem(store, "itm-sal", "Sal marina", "ingredient", "0", "0")
	itemRepo := &fakeItemRepo{store: store}
	logRepo := &fakeLogRepo{store: store}

	deltas := []string{"10", "-3", "4.5", "-1.5", "-2"}
	types := []string{
		entity.MovementPurchase, entity.MovementProductionConsume,
		entity.MovementPurchase, entity.MovementWaste, entity.MovementSale,
	}
	for i, d := range deltas {
		_, err := inventory.Adjust(itemRepo, logRepo, "itm-sal", dec(d), decimal.Zero, inventory.Movement{
			Type: types[i], Reason: "mov",
		})
		require.NoError(t, err)
	}

	sum, err := logRepo.SumByItem("itm-sal")
	require.NoError(t, err)
	assert.True(t, sum.Equal(store.items["itm-sal"].CurrentStock),
		"suma del log %s != current_stock %s", sum, store.items["itm-sal"].CurrentStock)
	assert.True(t, sum.Equal(dec("8")))
}
