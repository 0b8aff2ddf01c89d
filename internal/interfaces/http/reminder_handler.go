package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/reminder"
)

// ReminderHandler maneja las peticiones HTTP de recordatorios de producción.
type ReminderHandler struct {
	uc *reminder.UseCase
}

// NewReminderHandler construye el handler.
func NewReminderHandler(uc *reminder.UseCase) *ReminderHandler {
	return &ReminderHandler{uc: uc}
}

// Snooze godoc
// @Summary      Posponer un recordatorio
// @Description  Un snooze posterior pisa al anterior. Uno completado no se puede posponer.
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del recordatorio"
// @Param        body  body  dto.SnoozeReminderRequest  true  "snooze_until"
// @Success      200   {object}  dto.OpResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reminders/{id}/snooze [post]
func (h *ReminderHandler) Snooze(c *fiber.Ctx) error {
	var in dto.SnoozeReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.uc.Snooze(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Complete godoc
// @Summary      Completar un recordatorio
// @Description  Completar dos veces responde éxito sin sobreescribir la marca original.
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del recordatorio"
// @Param        body  body  dto.CompleteReminderRequest  false "notas opcionales"
// @Success      200   {object}  dto.OpResult
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reminders/{id}/complete [post]
func (h *ReminderHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteReminderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	result, err := h.uc.Complete(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ListPending godoc
// @Summary      Listar recordatorios pendientes
// @Description  Vencidos y próximos, por vencimiento ascendente, con is_due evaluado al consultar.
// @Tags         reminders
// @Produce      json
// @Success      200  {array}  dto.ReminderDTO
// @Router       /api/reminders/pending [get]
func (h *ReminderHandler) ListPending(c *fiber.Ctx) error {
	reminders, err := h.uc.Pending(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reminders)
}
