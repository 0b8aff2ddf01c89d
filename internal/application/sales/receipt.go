package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

// ReceiptUseCase arma el recibo PDF de una venta ya registrada.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.InventoryItemRepository
	generator    ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.InventoryItemRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, customerRepo: customerRepo, itemRepo: itemRepo, generator: generator}
}

// GetSale devuelve una venta con sus líneas.
func (uc *ReceiptUseCase) GetSale(ctx context.Context, id string) (*dto.SaleDTO, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("consultando venta: %w", err)
	}
	if sale == nil {
		return nil, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}

	items, err := uc.saleRepo.ListItems(id)
	if err != nil {
		return nil, fmt.Errorf("consultando líneas de la venta: %w", err)
	}

	out := dto.NewSaleDTO(sale)
	out.Items = make([]dto.SaleItemDTO, 0, len(items))
	for _, it := range items {
		name := it.InventoryID
		if product, err := uc.itemRepo.GetByID(it.InventoryID); err == nil && product != nil {
			name = product.Name
		}
		out.Items = append(out.Items, dto.SaleItemDTO{
			InventoryID: it.InventoryID,
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			Notes:       it.Notes,
		})
	}
	return &out, nil
}

// ListRecent devuelve las ventas más recientes.
func (uc *ReceiptUseCase) ListRecent(ctx context.Context, limit int) ([]dto.SaleDTO, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	list, err := uc.saleRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("listando ventas: %w", err)
	}
	out := make([]dto.SaleDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NewSaleDTO(s))
	}
	return out, nil
}

// GenerateReceipt produce el PDF del recibo de una venta.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.GetSale(ctx, saleID)
	if err != nil {
		return nil, "", err
	}

	customerName := "Consumidor final"
	if sale.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*sale.CustomerID)
		if err != nil {
			return nil, "", fmt.Errorf("consultando cliente: %w", err)
		}
		if customer != nil {
			customerName = customer.Name
		}
	}

	pdf, err := uc.generator.Generate(*sale, customerName)
	if err != nil {
		return nil, "", fmt.Errorf("generando recibo de %s: %w", sale.SaleNumber, err)
	}
	return pdf, sale.SaleNumber, nil
}
