package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// ManualBalanceHandler balances de empresa ingresados a mano por período.
type ManualBalanceHandler struct {
	uc *usecase.ManualBalanceUseCase
}

// NewManualBalanceHandler construye el handler de balances manuales.
func NewManualBalanceHandler(uc *usecase.ManualBalanceUseCase) *ManualBalanceHandler {
	return &ManualBalanceHandler{uc: uc}
}

// List godoc
// @Summary      Listar balances manuales de un período
// @Tags         manual-balances
// @Produce      json
// @Security     BearerAuth
// @Param        period_id  query  string  true  "ID del período"
// @Success      200  {array}   dto.ManualBalanceResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/manual-balances [get]
func (h *ManualBalanceHandler) List(c *fiber.Ctx) error {
	var q dto.ManualBalanceQuery
	if err := c.QueryParser(&q); err != nil {
		return validationError(c, "query inválida")
	}
	if q.PeriodID == "" {
		return validationError(c, "period_id es requerido")
	}
	balances, err := h.uc.List(c.Context(), q)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(balances)
}

// Create godoc
// @Summary      Registrar balance manual
// @Description  El período debe existir. Varios balances por período son válidos; el más reciente es el autoritativo.
// @Tags         manual-balances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateManualBalanceRequest  true  "period_id, manual_company_balance, note"
// @Success      201   {object}  dto.ManualBalanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/manual-balances [post]
func (h *ManualBalanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManualBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return validationError(c, "cuerpo inválido")
	}
	if in.PeriodID == "" {
		return validationError(c, "period_id es requerido")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar balance manual (parcial)
// @Tags         manual-balances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "ID del balance"
// @Param        body  body  dto.UpdateManualBalanceRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ManualBalanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/manual-balances/{id} [patch]
func (h *ManualBalanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateManualBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return validationError(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar balance manual
// @Tags         manual-balances
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del balance"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manual-balances/{id} [delete]
func (h *ManualBalanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
