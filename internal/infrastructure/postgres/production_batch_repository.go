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

var _ repository.ProductionBatchRepository = (*ProductionBatchRepo)(nil)

const batchColumns = `
	id, batch_number, product_inventory_id, recipe_template_id, batch_size, unit,
	start_date, estimated_completion_date, completion_date, status,
	production_time_hours, yield_percentage, actual_yield, quality_notes,
	storage_location, notes, created_at, updated_at`

// ProductionBatchRepo implementación de ProductionBatchRepository sobre PostgreSQL (usable con pool o tx).
type ProductionBatchRepo struct {
	q Querier
}

// NewProductionBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionBatchRepository(q Querier) *ProductionBatchRepo {
	return &ProductionBatchRepo{q: q}
}

func scanBatch(row pgx.Row) (*entity.ProductionBatch, error) {
	var b entity.ProductionBatch
	err := row.Scan(
		&b.ID, &b.BatchNumber, &b.ProductInventoryID, &b.RecipeTemplateID, &b.BatchSize,
		&b.Unit, &b.StartDate, &b.EstimatedCompletionDate, &b.CompletionDate, &b.Status,
		&b.ProductionTimeHours, &b.YieldPercentage, &b.ActualYield, &b.QualityNotes,
		&b.StorageLocation, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste un lote nuevo con su número ya asignado.
func (r *ProductionBatchRepo) Create(batch *entity.ProductionBatch) error {
	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}
	query := `
		INSERT INTO production_batches (id, batch_number, product_inventory_id,
			recipe_template_id, batch_size, unit, start_date, estimated_completion_date,
			status, storage_location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.BatchNumber, batch.ProductInventoryID, batch.RecipeTemplateID,
		batch.BatchSize, batch.Unit, batch.StartDate, batch.EstimatedCompletionDate,
		batch.Status, batch.StorageLocation, batch.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *ProductionBatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches WHERE id = $1`
	batch, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return batch, nil
}

// GetForUpdate obtiene un lote y bloquea su fila (SELECT FOR UPDATE) para la
// transición de estado.
func (r *ProductionBatchRepo) GetForUpdate(id string) (*entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches WHERE id = $1 FOR UPDATE`
	batch, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch for update: %w", err)
	}
	return batch, nil
}

// Update escribe el estado y los campos de cierre de un lote.
func (r *ProductionBatchRepo) Update(batch *entity.ProductionBatch) error {
	query := `
		UPDATE production_batches SET status = $2, completion_date = $3,
			estimated_completion_date = $4, production_time_hours = $5,
			yield_percentage = $6, actual_yield = $7, quality_notes = $8,
			storage_location = $9, notes = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Status, batch.CompletionDate, batch.EstimatedCompletionDate,
		batch.ProductionTimeHours, batch.YieldPercentage, batch.ActualYield,
		batch.QualityNotes, batch.StorageLocation, batch.Notes,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista los lotes in_progress, más reciente primero.
func (r *ProductionBatchRepo) ListActive() ([]*entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches
		WHERE status = $1 ORDER BY start_date DESC`
	return r.list(query, entity.BatchInProgress)
}

// ListHistory lista lotes más recientes primero; productInventoryID vacío = todos.
func (r *ProductionBatchRepo) ListHistory(productInventoryID string, limit int) ([]*entity.ProductionBatch, error) {
	if productInventoryID == "" {
		query := `SELECT ` + batchColumns + ` FROM production_batches
			ORDER BY start_date DESC LIMIT $1`
		return r.list(query, limit)
	}
	query := `SELECT ` + batchColumns + ` FROM production_batches
		WHERE product_inventory_id = $1 ORDER BY start_date DESC LIMIT $2`
	return r.list(query, productInventoryID, limit)
}

func (r *ProductionBatchRepo) list(query string, args ...any) ([]*entity.ProductionBatch, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []*entity.ProductionBatch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

// LastNumberWithPrefix devuelve el mayor batch_number con el prefijo fechado
// ("" si no hay ninguno). Llamar dentro de la transacción que inserta el lote.
func (r *ProductionBatchRepo) LastNumberWithPrefix(prefix string) (string, error) {
	query := `
		SELECT batch_number FROM production_batches
		WHERE batch_number LIKE $1 || '-%'
		ORDER BY batch_number DESC LIMIT 1`
	var last string
	err := r.q.QueryRow(context.Background(), query, prefix).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last batch number: %w", err)
	}
	return last, nil
}

// AddIngredient congela la foto de consumo de un ingrediente del lote.
func (r *ProductionBatchRepo) AddIngredient(ing *entity.BatchIngredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	query := `
		INSERT INTO production_batch_ingredients (id, batch_id, ingredient_inventory_id,
			quantity_used, unit, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.BatchID, ing.IngredientInventoryID, ing.QuantityUsed, ing.Unit, ing.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert batch ingredient: %w", err)
	}
	return nil
}

// ListIngredients lista la foto de ingredientes de un lote.
func (r *ProductionBatchRepo) ListIngredients(batchID string) ([]*entity.BatchIngredient, error) {
	query := `
		SELECT id, batch_id, ingredient_inventory_id, quantity_used, unit, notes
		FROM production_batch_ingredients
		WHERE batch_id = $1
		ORDER BY ingredient_inventory_id`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list batch ingredients: %w", err)
	}
	defer rows.Close()

	var ings []*entity.BatchIngredient
	for rows.Next() {
		var ing entity.BatchIngredient
		if err := rows.Scan(
			&ing.ID, &ing.BatchID, &ing.IngredientInventoryID,
			&ing.QuantityUsed, &ing.Unit, &ing.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan batch ingredient: %w", err)
		}
		ings = append(ings, &ing)
	}
	return ings, rows.Err()
}

// CountInProgressByRecipe cuenta lotes in_progress que referencian una receta.
func (r *ProductionBatchRepo) CountInProgressByRecipe(recipeTemplateID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM production_batches
		WHERE recipe_template_id = $1 AND status = $2`
	var n int
	if err := r.q.QueryRow(context.Background(), query, recipeTemplateID, entity.BatchInProgress).Scan(&n); err != nil {
		return 0, fmt.Errorf("count batches by recipe: %w", err)
	}
	return n, nil
}

// CountInProgressByIngredient cuenta lotes in_progress que consumieron un ítem.
func (r *ProductionBatchRepo) CountInProgressByIngredient(inventoryID string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT b.id)
		FROM production_batches b
		JOIN production_batch_ingredients i ON i.batch_id = b.id
		WHERE i.ingredient_inventory_id = $1 AND b.status = $2`
	var n int
	if err := r.q.QueryRow(context.Background(), query, inventoryID, entity.BatchInProgress).Scan(&n); err != nil {
		return 0, fmt.Errorf("count batches by ingredient: %w", err)
	}
	return n, nil
}
