package sales_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/sales"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

func newSaleFixture() (*salesStore, *sales.CreateSaleUseCase) {
	store := newSalesStore()
	uc := sales.NewCreateSaleUseCase(&fakeSaleTxRunner{store: store}, &fakeCustomerRepo{store: store}, testLogger())
	return store, uc
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCreateSale_TotalesYDescuentoDeStock(t *testing.T) {
	store, uc := newSaleFixture()
	seedProduct(store, "itm-chucrut", "Chucrut clásico", "20")
	seedProduct(store, "itm-kimchi", "Kimchi", "10")
	store.customers["cus-1"] = &entity.Customer{ID: "cus-1", Name: "La Tiendita", IsActive: true}
	customerID := "cus-1"

	result, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID: &customerID,
		Items: []dto.SaleLineRequest{
			{InventoryID: "itm-chucrut", Quantity: dec("3"), UnitPrice: dec("5.50")},
			{InventoryID: "itm-kimchi", Quantity: dec("2"), UnitPrice: dec("7.00")},
		},
		TaxAmount:      decPtr("2.91"),
		DiscountAmount: decPtr("1.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.SaleNumber)
	assert.True(t, strings.HasPrefix(*result.SaleNumber, "SALE-"))
	assert.True(t, strings.HasSuffix(*result.SaleNumber, "-001"))

	sale := store.sales[*result.SaleID]
	require.NotNil(t, sale)
	// subtotal = 3*5.50 + 2*7.00 = 30.50; total = 30.50 + 2.91 - 1.00 = 32.41
	assert.True(t, sale.Subtotal.Equal(dec("30.50")), "subtotal %s", sale.Subtotal)
	assert.True(t, sale.TotalAmount.Equal(dec("32.41")), "total %s", sale.TotalAmount)
	assert.Equal(t, entity.PaymentCompleted, sale.PaymentStatus, "sin estado explícito la venta queda completada")

	// Stock descontado y movimientos tipo sale con el cliente en la razón.
	assert.True(t, store.items["itm-chucrut"].CurrentStock.Equal(dec("17")))
	assert.True(t, store.items["itm-kimchi"].CurrentStock.Equal(dec("8")))
	require.Len(t, store.movements, 2)
	for _, mov := range store.movements {
		assert.Equal(t, entity.MovementSale, mov.Type)
		assert.Contains(t, mov.Reason, "La Tiendita")
	}

	// Las líneas guardan su total calculado.
	items := store.saleItems
	require.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.LineTotal.Equal(it.Quantity.Mul(it.UnitPrice)))
	}
}

func TestCreateSale_TotalNegativoPermitido(t *testing.T) {
	store, uc := newSaleFixture()
	seedProduct(store, "itm-chucrut", "Chucrut clásico", "5")

	result, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		Items:          []dto.SaleLineRequest{{InventoryID: "itm-chucrut", Quantity: dec("1"), UnitPrice: dec("5.00")}},
		DiscountAmount: decPtr("8.00"),
	})
	require.NoError(t, err)
	sale := store.sales[*result.SaleID]
	assert.True(t, sale.TotalAmount.Equal(dec("-3.00")),
		"un descuento mayor que el subtotal produce total negativo sin recorte")
}

func TestCreateSale_TodoONada(t *testing.T) {
	store, uc := newSaleFixture()
	seedProduct(store, "itm-chucrut", "Chucrut clásico", "20")
	seedProduct(store, "itm-kimchi", "Kimchi", "1")

	// El kimchi no alcanza: ni cabecera, ni líneas, ni descuentos de stock.
	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{InventoryID: "itm-chucrut", Quantity: dec("3"), UnitPrice: dec("5.50")},
			{InventoryID: "itm-kimchi", Quantity: dec("2"), UnitPrice: dec("7.00")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, store.sales)
	assert.Empty(t, store.saleItems)
	assert.Empty(t, store.movements)
	assert.True(t, store.items["itm-chucrut"].CurrentStock.Equal(dec("20")), "el chucrut vuelve intacto")
}

func TestCreateSale_NumeracionIncrementa(t *testing.T) {
	store, uc := newSaleFixture()
	seedProduct(store, "itm-chucrut", "Chucrut clásico", "100")

	var last string
	for i := 0; i < 3; i++ {
		result, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
			Items: []dto.SaleLineRequest{{InventoryID: "itm-chucrut", Quantity: dec("1"), UnitPrice: dec("5")}},
		})
		require.NoError(t, err)
		last = *result.SaleNumber
	}
	assert.True(t, strings.HasSuffix(last, "-003"), "tercera venta del día termina en 003, dio %s", last)
}

func TestCreateSale_Validaciones(t *testing.T) {
	store, uc := newSaleFixture()
	seedProduct(store, "itm-chucrut", "Chucrut clásico", "10")
	ctx := context.Background()

	_, err := uc.CreateSale(ctx, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta sin líneas")

	_, err = uc.CreateSale(ctx, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{InventoryID: "itm-chucrut", Quantity: dec("0"), UnitPrice: dec("5")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.CreateSale(ctx, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{InventoryID: "itm-chucrut", Quantity: dec("1"), UnitPrice: dec("-5")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	bad := "contra_entrega"
	_, err = uc.CreateSale(ctx, dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{InventoryID: "itm-chucrut", Quantity: dec("1"), UnitPrice: dec("5")}},
		PaymentStatus: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado de pago desconocido")

	ghost := "cus-fantasma"
	_, err = uc.CreateSale(ctx, dto.CreateSaleRequest{
		CustomerID: &ghost,
		Items:      []dto.SaleLineRequest{{InventoryID: "itm-chucrut", Quantity: dec("1"), UnitPrice: dec("5")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")
}
