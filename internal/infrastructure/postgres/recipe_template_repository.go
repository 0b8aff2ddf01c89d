package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Fermentario-api/internal/domain"
	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
	"github.com/jhoicas/Fermentario-api/internal/domain/repository"
)

var _ repository.RecipeTemplateRepository = (*RecipeTemplateRepo)(nil)

const recipeColumns = `
	id, template_name, description, product_inventory_id, default_batch_size,
	default_unit, estimated_duration_hours, ingredient_template, reminder_schedule,
	instructions, is_active, created_at, updated_at`

// RecipeTemplateRepo implementación de RecipeTemplateRepository sobre PostgreSQL (usable con pool o tx).
type RecipeTemplateRepo struct {
	q Querier
}

// NewRecipeTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeTemplateRepository(q Querier) *RecipeTemplateRepo {
	return &RecipeTemplateRepo{q: q}
}

func scanRecipe(row pgx.Row) (*entity.RecipeTemplate, error) {
	var t entity.RecipeTemplate
	err := row.Scan(
		&t.ID, &t.TemplateName, &t.Description, &t.ProductInventoryID, &t.DefaultBatchSize,
		&t.DefaultUnit, &t.EstimatedDurationHours, &t.IngredientTemplate, &t.ReminderSchedule,
		&t.Instructions, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una receta nueva.
func (r *RecipeTemplateRepo) Create(t *entity.RecipeTemplate) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO recipe_templates (id, template_name, description, product_inventory_id,
			default_batch_size, default_unit, estimated_duration_hours, ingredient_template,
			reminder_schedule, instructions, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.TemplateName, t.Description, t.ProductInventoryID, t.DefaultBatchSize,
		t.DefaultUnit, t.EstimatedDurationHours, t.IngredientTemplate, t.ReminderSchedule,
		t.Instructions, t.IsActive,
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// GetByID obtiene una receta por ID.
func (r *RecipeTemplateRepo) GetByID(id string) (*entity.RecipeTemplate, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipe_templates WHERE id = $1`
	t, err := scanRecipe(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return t, nil
}

// Update reemplaza la receta completa, documentos JSONB incluidos.
func (r *RecipeTemplateRepo) Update(t *entity.RecipeTemplate) error {
	query := `
		UPDATE recipe_templates SET template_name = $2, description = $3,
			product_inventory_id = $4, default_batch_size = $5, default_unit = $6,
			estimated_duration_hours = $7, ingredient_template = $8,
			reminder_schedule = $9, instructions = $10, is_active = $11, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		t.ID, t.TemplateName, t.Description, t.ProductInventoryID, t.DefaultBatchSize,
		t.DefaultUnit, t.EstimatedDurationHours, t.IngredientTemplate, t.ReminderSchedule,
		t.Instructions, t.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate marca la receta como inactiva (borrado blando).
func (r *RecipeTemplateRepo) Deactivate(id string) error {
	query := `UPDATE recipe_templates SET is_active = false, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista las recetas activas por nombre.
func (r *RecipeTemplateRepo) ListActive() ([]*entity.RecipeTemplate, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipe_templates
		WHERE is_active = true ORDER BY template_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*entity.RecipeTemplate
	for rows.Next() {
		t, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, t)
	}
	return recipes, rows.Err()
}
