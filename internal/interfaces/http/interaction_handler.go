package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// InteractionHandler maneja las peticiones HTTP de interacciones.
type InteractionHandler struct {
	uc  *usecase.InteractionUseCase
	log *logger.Logger
}

func NewInteractionHandler(uc *usecase.InteractionUseCase, log *logger.Logger) *InteractionHandler {
	return &InteractionHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar interacción
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInteractionRequest  true  "Datos de la interacción"
// @Success      201   {object}  dto.InteractionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/interactions [post]
func (h *InteractionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInteractionRequest
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
// @Summary      Obtener interacción por ID
// @Tags         interactions
// @Produce      json
// @Param        id   path  int  true  "ID de la interacción"
// @Success      200  {object}  dto.InteractionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/interactions/{id} [get]
func (h *InteractionHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "interacción no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar interacciones
// @Tags         interactions
// @Produce      json
// @Success      200  {array}  dto.InteractionResponse
// @Router       /api/interactions [get]
func (h *InteractionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar interacción
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la interacción"
// @Param        body  body  dto.UpdateInteractionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InteractionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/interactions/{id} [put]
// @Router       /api/interactions/{id} [patch]
func (h *InteractionHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateInteractionRequest
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
