package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// ActivityLogHandler consulta del log de actividad (solo admin, solo lectura).
type ActivityLogHandler struct {
	uc *usecase.ActivityLogUseCase
}

// NewActivityLogHandler construye el handler del log de actividad.
func NewActivityLogHandler(uc *usecase.ActivityLogUseCase) *ActivityLogHandler {
	return &ActivityLogHandler{uc: uc}
}

// List godoc
// @Summary      Listar log de actividad
// @Description  Entradas más recientes primero, con filtros opcionales y paginación.
// @Tags         activity-logs
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int     false  "página (desde 1)"
// @Param        limit      query  int     false  "tamaño de página (máx 100)"
// @Param        action     query  string  false  "filtrar por acción"
// @Param        user_id    query  string  false  "filtrar por usuario"
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD (inclusive)"
// @Success      200  {object}  dto.ActivityLogListResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/activity-logs [get]
func (h *ActivityLogHandler) List(c *fiber.Ctx) error {
	var q dto.ActivityLogQuery
	if err := c.QueryParser(&q); err != nil {
		return validationError(c, "query inválida")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
