package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/analytics"
)

// DashboardHandler resumen financiero por período.
type DashboardHandler struct {
	uc *analytics.SummaryUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.SummaryUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero del período
// @Description  Sumas etiquetadas, balance teórico y varianza contra el balance manual más reciente.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period_id  query  string  true  "ID del período"
// @Success      200  {object}  dto.PeriodSummaryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	periodID := c.Query("period_id")
	if periodID == "" {
		return validationError(c, "period_id es requerido")
	}
	out, err := h.uc.GetPeriodSummary(c.Context(), periodID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Resumen financiero del período en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        period_id  query  string  true  "ID del período"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary/pdf [get]
func (h *DashboardHandler) SummaryPDF(c *fiber.Ctx) error {
	periodID := c.Query("period_id")
	if periodID == "" {
		return validationError(c, "period_id es requerido")
	}
	pdfBytes, err := h.uc.GetPeriodSummaryPDF(c.Context(), periodID)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-periodo.pdf"`)
	return c.Send(pdfBytes)
}
