package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del catálogo de inventario y
// los ajustes manuales de stock.
type InventoryHandler struct {
	itemUC   *inventory.ItemUseCase
	adjustUC *inventory.RegisterAdjustmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(itemUC *inventory.ItemUseCase, adjustUC *inventory.RegisterAdjustmentUseCase) *InventoryHandler {
	return &InventoryHandler{itemUC: itemUC, adjustUC: adjustUC}
}

// CreateItem godoc
// @Summary      Crear ítem de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, category, unit; stock inicial opcional"
// @Success      201   {object}  dto.ItemResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.itemUC.CreateItem(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetItem godoc
// @Summary      Obtener ítem por id
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.InventoryItemDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.itemUC.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// UpdateItem godoc
// @Summary      Actualizar campos descriptivos de un ítem
// @Description  Los campos de stock no son editables por esta vía.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ItemResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.itemUC.UpdateItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// DeleteItem godoc
// @Summary      Borrar o desactivar un ítem
// @Description  Un ítem con movimientos, lotes o ventas se desactiva en lugar de borrarse.
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.OpResult
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	result, err := h.itemUC.DeleteItem(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ListItems godoc
// @Summary      Listar ítems de inventario
// @Tags         inventory
// @Produce      json
// @Param        include_inactive  query  bool  false  "Incluir ítems desactivados"
// @Success      200  {array}  dto.InventoryItemDTO
// @Router       /api/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	activeOnly := !c.QueryBool("include_inactive")
	items, err := h.itemUC.ListItems(c.Context(), activeOnly)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// ListFinishedProducts godoc
// @Summary      Listar productos terminados vendibles
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryItemDTO
// @Router       /api/items/finished-products [get]
func (h *InventoryHandler) ListFinishedProducts(c *fiber.Ctx) error {
	items, err := h.itemUC.ListFinishedProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// ListLowStock godoc
// @Summary      Listar ítems en o bajo el punto de reorden
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryItemDTO
// @Router       /api/items/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	items, err := h.itemUC.ListLowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// ListMovements godoc
// @Summary      Log de movimientos de un ítem
// @Tags         inventory
// @Produce      json
// @Param        id      path   string  true   "ID del ítem"
// @Param        limit   query  int     false  "Máximo de filas (default 50, tope 500)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.MovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movs, err := h.itemUC.ListMovements(c.Context(), c.Params("id"), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movs)
}

// RegisterAdjustment godoc
// @Summary      Registrar ajuste manual o merma
// @Description  adjustment lleva delta con signo; waste lleva cantidad positiva y siempre resta.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "inventory_id, type, quantity, reason"
// @Success      201   {object}  dto.ItemResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.adjustUC.RegisterAdjustment(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
