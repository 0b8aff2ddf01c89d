package repository

import "github.com/jhoicas/Fermentario-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	AddItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	ListItems(saleID string) ([]*entity.SaleItem, error)
	ListRecent(limit int) ([]*entity.Sale, error)
	// LastNumberWithPrefix análogo al de lotes; llamar dentro de la transacción.
	LastNumberWithPrefix(prefix string) (string, error)
}
