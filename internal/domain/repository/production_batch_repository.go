package repository

import "github.com/jhoicas/Fermentario-api/internal/domain/entity"

// ProductionBatchRepository define el puerto de persistencia para lotes de producción.
type ProductionBatchRepository interface {
	Create(batch *entity.ProductionBatch) error
	GetByID(id string) (*entity.ProductionBatch, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE) para la
	// transición de estado.
	GetForUpdate(id string) (*entity.ProductionBatch, error)
	Update(batch *entity.ProductionBatch) error
	ListActive() ([]*entity.ProductionBatch, error)
	// ListHistory lista lotes más recientes primero; productInventoryID vacío = todos.
	ListHistory(productInventoryID string, limit int) ([]*entity.ProductionBatch, error)
	// LastNumberWithPrefix devuelve el mayor batch_number que empieza con el
	// prefijo fechado ("" si no hay ninguno). Llamar dentro de la misma
	// transacción que inserta el lote para evitar colisiones.
	LastNumberWithPrefix(prefix string) (string, error)
	AddIngredient(ing *entity.BatchIngredient) error
	ListIngredients(batchID string) ([]*entity.BatchIngredient, error)
	CountInProgressByRecipe(recipeTemplateID string) (int, error)
	CountInProgressByIngredient(inventoryID string) (int, error)
}
