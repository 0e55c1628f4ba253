package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc  *usecase.SaleUseCase
	log *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar venta
// @Description  status es opcional (Pending por defecto). El cliente debe existir.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "venta no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
// @Router       /api/sales/{id} [patch]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.ID = id
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
