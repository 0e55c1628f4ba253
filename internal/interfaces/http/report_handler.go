package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/report"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// ReportHandler sirve los reportes en PDF.
type ReportHandler struct {
	uc  *report.CustomerReportUseCase
	log *logger.Logger
}

func NewReportHandler(uc *report.CustomerReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// CustomerReport godoc
// @Summary      Estado de cuenta del cliente (PDF)
// @Tags         customers
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/report [get]
func (h *ReportHandler) CustomerReport(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c)
	}
	doc, err := h.uc.Generate(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="cliente-%d.pdf"`, id))
	return c.Send(doc)
}
