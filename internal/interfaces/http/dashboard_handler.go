package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetOverview devuelve la instantánea de clientes, ventas e interacciones.
// GET /api/dashboard/overview
//
// Respuesta: DashboardOverviewDTO (total_customers, total_sales, total_sales_amount,
// pending_sales, completed_sales, cancelled_sales, total_interactions,
// recent_interactions[5]).
//
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardOverviewDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.uc.GetOverview(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(overview)
}
