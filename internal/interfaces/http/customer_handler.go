package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc            *usecase.CustomerUseCase
	salesUC       *usecase.SaleUseCase
	interactionUC *usecase.InteractionUseCase
	log           *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(
	uc *usecase.CustomerUseCase,
	salesUC *usecase.SaleUseCase,
	interactionUC *usecase.InteractionUseCase,
	log *logger.Logger,
) *CustomerHandler {
	return &CustomerHandler{uc: uc, salesUC: salesUC, interactionUC: interactionUC, log: log}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Description  Todos los clientes en orden de creación.
// @Tags         customers
// @Produce      json
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Actualización parcial: solo se modifican los campos enviados.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
// @Router       /api/customers/{id} [patch]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateCustomerRequest
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

// GetWithRelations godoc
// @Summary      Cliente con ventas e interacciones
// @Description  Ventas por id ascendente; interacciones de la más reciente a la más antigua.
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerWithRelationsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/relations [get]
func (h *CustomerHandler) GetWithRelations(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetWithRelations(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(out)
}

// ListSales godoc
// @Summary      Ventas de un cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/customers/{id}/sales [get]
func (h *CustomerHandler) ListSales(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.salesUC.ListByCustomer(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListInteractions godoc
// @Summary      Interacciones de un cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {array}  dto.InteractionResponse
// @Router       /api/customers/{id}/interactions [get]
func (h *CustomerHandler) ListInteractions(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	out, err := h.interactionUC.ListByCustomer(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
