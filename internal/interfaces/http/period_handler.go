package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// PeriodHandler gestión de períodos contables.
type PeriodHandler struct {
	uc *usecase.PeriodUseCase
}

// NewPeriodHandler construye el handler de períodos.
func NewPeriodHandler(uc *usecase.PeriodUseCase) *PeriodHandler {
	return &PeriodHandler{uc: uc}
}

// List godoc
// @Summary      Listar períodos
// @Tags         periods
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PeriodResponse
// @Router       /api/periods [get]
func (h *PeriodHandler) List(c *fiber.Ctx) error {
	periods, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(periods)
}

// Create godoc
// @Summary      Crear período
// @Tags         periods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePeriodRequest  true  "name, start_date, end_date"
// @Success      201   {object}  dto.PeriodResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/periods [post]
func (h *PeriodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return validationError(c, "cuerpo inválido")
	}
	if in.Name == "" || in.StartDate == "" || in.EndDate == "" {
		return validationError(c, "name, start_date y end_date son requeridos")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Cerrar período
// @Description  Marca el período como cerrado. Idempotente: cerrar un período ya cerrado devuelve 200.
// @Tags         periods
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del período"
// @Success      200  {object}  dto.PeriodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periods/{id}/close [patch]
func (h *PeriodHandler) Close(c *fiber.Ctx) error {
	out, err := h.uc.Close(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
