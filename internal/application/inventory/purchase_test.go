package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/inventory"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

func newPurchaseFixture() (*memStore, *inventory.RecordPurchaseUseCase) {
	store := newMemStore()
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Huerta del Valle"},
	}}
	uc := inventory.NewRecordPurchaseUseCase(&fakeTxRunner{store: store}, suppliers, testLogger())
	return store, uc
}

func TestRecordPurchase_MultiLinea(t *testing.T) {
	store, uc := newPurchaseFixture()
	seedItem(store, "itm-repollo", "Repollo", "ingredient", "2", "0")
	seedItem(store, "itm-sal", "Sal marina", "ingredient", "5", "0")

	result, err := uc.RecordPurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: "sup-1",
		Items: []dto.PurchaseLineRequest{
			{InventoryID: "itm-sal", Quantity: dec("10"), UnitCost: dec("1.20")},
			{InventoryID: "itm-repollo", Quantity: dec("8"), UnitCost: dec("0.90")},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.UpdatedItems, 2)

	requireStock(t, store, "itm-repollo", "10", "0")
	requireStock(t, store, "itm-sal", "15", "0")
	require.NotNil(t, store.items["itm-sal"].CostPerUnit)
	assert.True(t, store.items["itm-sal"].CostPerUnit.Equal(dec("1.20")))

	require.Len(t, store.movements, 2)
	for _, mov := range store.movements {
		assert.Equal(t, entity.MovementPurchase, mov.Type)
		assert.Contains(t, mov.Reason, "Huerta del Valle")
	}
}

func TestRecordPurchase_TodoONada(t *testing.T) {
	store, uc := newPurchaseFixture()
	seedItem(store, "itm-sal", "Sal marina", "ingredient", "5", "0")

	// La segunda línea apunta a un ítem inexistente: nada debe persistir.
	_, err := uc.RecordPurchase(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: "sup-1",
		Items: []dto.PurchaseLineRequest{
			{InventoryID: "itm-sal", Quantity: dec("10"), UnitCost: dec("1.20")},
			{InventoryID: "itm-zzz", Quantity: dec("3"), UnitCost: dec("2.00")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	requireStock(t, store, "itm-sal", "5", "0")
	assert.Empty(t, store.movements, "el rollback no deja movimientos huérfanos")
	assert.Nil(t, store.items["itm-sal"].CostPerUnit, "el costo tampoco debe sobrevivir al rollback")
}

func TestRecordPurchase_UltimaCompraGanaElCosto(t *testing.T) {
	store, uc := newPurchaseFixture()
	seedItem(store, "itm-sal", "Sal marina", "ingredient", "0", "0")

	for _, cost := range []string{"1.00", "1.50", "1.10"} {
		_, err := uc.RecordPurchase(context.Background(), dto.CreatePurchaseRequest{
			SupplierID: "sup-1",
			Items:      []dto.PurchaseLineRequest{{InventoryID: "itm-sal", Quantity: dec("1"), UnitCost: dec(cost)}},
		})
		require.NoError(t, err)
	}
	assert.True(t, store.items["itm-sal"].CostPerUnit.Equal(dec("1.10")),
		"el costo registrado debe ser el de la última compra, no un promedio")
}

func TestRecordPurchase_Validaciones(t *testing.T) {
	_, uc := newPurchaseFixture()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, dto.CreatePurchaseRequest{SupplierID: "", Items: []dto.PurchaseLineRequest{{InventoryID: "x", Quantity: dec("1")}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "supplier_id vacío")

	_, err = uc.RecordPurchase(ctx, dto.CreatePurchaseRequest{SupplierID: "sup-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "compra sin líneas")

	_, err = uc.RecordPurchase(ctx, dto.CreatePurchaseRequest{
		SupplierID: "sup-1",
		Items:      []dto.PurchaseLineRequest{{InventoryID: "x", Quantity: dec("0"), UnitCost: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.RecordPurchase(ctx, dto.CreatePurchaseRequest{
		SupplierID: "sup-1",
		Items:      []dto.PurchaseLineRequest{{InventoryID: "x", Quantity: dec("1"), UnitCost: dec("-0.5")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "costo negativo")

	_, err = uc.RecordPurchase(ctx, dto.CreatePurchaseRequest{
		SupplierID: "sup-fantasma",
		Items:      []dto.PurchaseLineRequest{{InventoryID: "x", Quantity: dec("1"), UnitCost: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "proveedor inexistente")
}
