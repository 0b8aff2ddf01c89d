package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/recipe"
)

// RecipeHandler maneja las peticiones HTTP de recetas plantilla.
type RecipeHandler struct {
	uc *recipe.UseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *recipe.UseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear receta
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecipeRequest  true  "template_name y documentos opcionales"
// @Success      201   {object}  dto.RecipeResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/recipes [post]
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.uc.CreateRecipe(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetByID godoc
// @Summary      Obtener receta por id
// @Tags         recipes
// @Produce      json
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {object}  dto.RecipeDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *fiber.Ctx) error {
	result, err := h.uc.GetRecipe(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Update godoc
// @Summary      Actualizar receta
// @Description  Un documento presente reemplaza el anterior completo; los lotes ya creados no cambian.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la receta"
// @Param        body  body  dto.UpdateRecipeRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.RecipeResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [put]
func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.uc.UpdateRecipe(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Delete godoc
// @Summary      Desactivar receta
// @Description  Borrado blando; se rechaza si hay lotes en curso que la referencian.
// @Tags         recipes
// @Produce      json
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {object}  dto.OpResult
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	result, err := h.uc.DeactivateRecipe(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// List godoc
// @Summary      Listar recetas activas
// @Tags         recipes
// @Produce      json
// @Success      200  {array}  dto.RecipeDTO
// @Router       /api/recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	result, err := h.uc.ListRecipes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
