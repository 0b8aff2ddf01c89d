package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fermentario-api/internal/application/dto"
	"github.com/jhoicas/Fermentario-api/internal/application/sales"
)

// SalesHandler maneja las peticiones HTTP de ventas y recibos.
type SalesHandler struct {
	createUC  *sales.CreateSaleUseCase
	receiptUC *sales.ReceiptUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(createUC *sales.CreateSaleUseCase, receiptUC *sales.ReceiptUseCase) *SalesHandler {
	return &SalesHandler{createUC: createUC, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Registrar una venta
// @Description  Inserta cabecera y líneas y descuenta stock en una transacción; cualquier fallo revierte todo.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "líneas con cantidad y precio; cliente opcional"
// @Success      201   {object}  dto.SaleResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	result, err := h.createUC.CreateSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetByID godoc
// @Summary      Obtener una venta con sus líneas
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.receiptUC.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// List godoc
// @Summary      Listar ventas recientes
// @Tags         sales
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas (default 50, tope 500)"
// @Success      200  {array}  dto.SaleDTO
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	list, err := h.receiptUC.ListRecent(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Receipt godoc
// @Summary      Recibo PDF de una venta
// @Tags         sales
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt.pdf [get]
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, saleNumber, err := h.receiptUC.GenerateReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-%s.pdf"`, saleNumber))
	return c.Send(pdfBytes)
}
