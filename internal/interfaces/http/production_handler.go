package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/production"
	"github.com/jhoicas/Fermentario-api/internal/application/reminder"
)

// ProductionHandler maneja las peticiones HTTP del motor de producción.
type ProductionHandler struct {
	createUC   *production.CreateBatchUseCase
	completeUC *production.CompleteBatchUseCase
	failUC     *production.FailBatchUseCase
	queryUC    *production.QueryUseCase
	reminderUC *reminder.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(
	createUC *production.CreateBatchUseCase,
	completeUC *production.CompleteBatchUseCase,
	failUC *production.FailBatchUseCase,
	queryUC *production.QueryUseCase,
	reminderUC *reminder.UseCase,
) *ProductionHandler {
	return &ProductionHandler{
		createUC:   createUC,
		completeUC: completeUC,
		failUC:     failUC,
		queryUC:    queryUC,
		reminderUC: reminderUC,
	}
}

// CreateBatch godoc
// @Summary      Iniciar un lote de producción
// @Description  Numera el lote, consume ingredientes y siembra recordatorios en una transacción.
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "producto, tamaño, ingredientes con cantidades"
// @Success      201   {object}  dto.BatchResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *ProductionHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.createUC.CreateBatch(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// CompleteBatch godoc
// @Summary      Completar un lote
// @Description  Calcula rendimiento y duración y suma el producto terminado al stock.
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del lote"
// @Param        body  body  dto.CompleteBatchRequest true  "actual_yield y notas de calidad"
// @Success      200   {object}  dto.BatchResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/complete [post]
func (h *ProductionHandler) CompleteBatch(c *fiber.Ctx) error {
	var in dto.CompleteBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.completeUC.CompleteBatch(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// FailBatch godoc
// @Summary      Marcar un lote como fallido
// @Description  Los ingredientes consumidos no se devuelven al stock.
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del lote"
// @Param        body  body  dto.FailBatchRequest true  "razón del fallo"
// @Success      200   {object}  dto.BatchResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/fail [post]
func (h *ProductionHandler) FailBatch(c *fiber.Ctx) error {
	var in dto.FailBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.failUC.FailBatch(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ListActive godoc
// @Summary      Listar lotes en curso
// @Tags         production
// @Produce      json
// @Success      200  {array}  dto.BatchDTO
// @Router       /api/batches/active [get]
func (h *ProductionHandler) ListActive(c *fiber.Ctx) error {
	batches, err := h.queryUC.ListActive(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(batches)
}

// ListHistory godoc
// @Summary      Historial de lotes
// @Tags         production
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Máximo de filas (default 50, tope 500)"
// @Success      200  {array}  dto.BatchDTO
// @Router       /api/batches/history [get]
func (h *ProductionHandler) ListHistory(c *fiber.Ctx) error {
	batches, err := h.queryUC.ListHistory(c.Context(), c.Query("product_id"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(batches)
}

// GetBatch godoc
// @Summary      Obtener un lote con su foto de ingredientes
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *ProductionHandler) GetBatch(c *fiber.Ctx) error {
	batch, err := h.queryUC.GetBatch(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(batch)
}

// ListBatchReminders godoc
// @Summary      Recordatorios de un lote
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {array}  dto.ReminderDTO
// @Router       /api/batches/{id}/reminders [get]
func (h *ProductionHandler) ListBatchReminders(c *fiber.Ctx) error {
	reminders, err := h.reminderUC.ByBatch(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reminders)
}
