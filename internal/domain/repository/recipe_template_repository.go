package repository

import "github.com/jhoicas/Fermentario-api/internal/domain/entity"

// RecipeTemplateRepository define el puerto de persistencia para recetas.
// Update reemplaza los documentos de ingredientes y recordatorios completos.
type RecipeTemplateRepository interface {
	Create(t *entity.RecipeTemplate) error
	GetByID(id string) (*entity.RecipeTemplate, error)
	Update(t *entity.RecipeTemplate) error
	Deactivate(id string) error
	ListActive() ([]*entity.RecipeTemplate, error)
}
