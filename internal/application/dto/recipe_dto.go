package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Fermentario-api/internal/domain/entity"
)

// CreateRecipeRequest body para POST /api/recipes.
type CreateRecipeRequest struct {
	TemplateName           string           `json:"template_name"`
	Description            *string          `json:"description,omitempty"`
	ProductInventoryID     *string          `json:"product_inventory_id,omitempty"`
	DefaultBatchSize       *decimal.Decimal `json:"default_batch_size,omitempty"`
	DefaultUnit            *string          `json:"default_unit,omitempty"`
	EstimatedDurationHours *decimal.Decimal `json:"estimated_duration_hours,omitempty"`
	IngredientTemplate     json.RawMessage  `json:"ingredient_template,omitempty"`
	ReminderSchedule       json.RawMessage  `json:"reminder_schedule,omitempty"`
	Instructions           *string          `json:"instructions,omitempty"`
}

// UpdateRecipeRequest body para PUT /api/recipes/:id. Los documentos de
// ingredientes y recordatorios, si vienen, reemplazan el anterior completo.
type UpdateRecipeRequest struct {
	TemplateName           *string          `json:"template_name,omitempty"`
	Description            *string          `json:"description,omitempty"`
	ProductInventoryID     *string          `json:"product_inventory_id,omitempty"`
	DefaultBatchSize       *decimal.Decimal `json:"default_batch_size,omitempty"`
	DefaultUnit            *string          `json:"default_unit,omitempty"`
	EstimatedDurationHours *decimal.Decimal `json:"estimated_duration_hours,omitempty"`
	IngredientTemplate     json.RawMessage  `json:"ingredient_template,omitempty"`
	ReminderSchedule       json.RawMessage  `json:"reminder_schedule,omitempty"`
	Instructions           *string          `json:"instructions,omitempty"`
}

// RecipeDTO representación HTTP de una receta.
type RecipeDTO struct {
	ID                     string           `json:"id"`
	TemplateName           string           `json:"template_name"`
	Description            *string          `json:"description,omitempty"`
	ProductInventoryID     *string          `json:"product_inventory_id,omitempty"`
	DefaultBatchSize       *decimal.Decimal `json:"default_batch_size,omitempty"`
	DefaultUnit            *string          `json:"default_unit,omitempty"`
	EstimatedDurationHours *decimal.Decimal `json:"estimated_duration_hours,omitempty"`
	IngredientTemplate     json.RawMessage  `json:"ingredient_template,omitempty"`
	ReminderSchedule       json.RawMessage  `json:"reminder_schedule,omitempty"`
	Instructions           *string          `json:"instructions,omitempty"`
	IsActive               bool             `json:"is_active"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// RecipeResult resultado de una mutación sobre recetas.
type RecipeResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Recipe  *RecipeDTO `json:"recipe,omitempty"`
}

// NewRecipeDTO mapea la entidad al DTO.
func NewRecipeDTO(t *entity.RecipeTemplate) RecipeDTO {
	return RecipeDTO{
		ID:                     t.ID,
		TemplateName:           t.TemplateName,
		Description:            t.Description,
		ProductInventoryID:     t.ProductInventoryID,
		DefaultBatchSize:       t.DefaultBatchSize,
		DefaultUnit:            t.DefaultUnit,
		EstimatedDurationHours: t.EstimatedDurationHours,
		IngredientTemplate:     t.IngredientTemplate,
		ReminderSchedule:       t.ReminderSchedule,
		Instructions:           t.Instructions,
		IsActive:               t.IsActive,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}

// NewRecipeDTOs mapea una lista de recetas.
func NewRecipeDTOs(list []*entity.RecipeTemplate) []RecipeDTO {
	out := make([]RecipeDTO, 0, len(list))
	for _, t := range list {
		out = append(out, NewRecipeDTO(t))
	}
	return out
}
