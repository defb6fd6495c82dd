package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// CatalogHandler CRUD genérico de un catálogo con nombre (categorías de gasto,
// medios de pago). Cada instancia se liga a un use case concreto.
type CatalogHandler struct {
	list   func(c *fiber.Ctx) ([]dto.CatalogItemResponse, error)
	create func(c *fiber.Ctx, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error)
	update func(c *fiber.Ctx, id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error)
	delete func(c *fiber.Ctx, id string) error
}

// NewExpenseCategoryHandler construye el handler de categorías de gasto.
func NewExpenseCategoryHandler(uc *usecase.ExpenseCategoryUseCase) *CatalogHandler {
	return &CatalogHandler{
		list: func(c *fiber.Ctx) ([]dto.CatalogItemResponse, error) {
			return uc.List(c.Context())
		},
		create: func(c *fiber.Ctx, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
			return uc.Create(c.Context(), GetUserID(c), in)
		},
		update: func(c *fiber.Ctx, id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
			return uc.Update(c.Context(), GetUserID(c), id, in)
		},
		delete: func(c *fiber.Ctx, id string) error {
			return uc.Delete(c.Context(), GetUserID(c), id)
		},
	}
}

// NewPaymentMethodHandler construye el handler de medios de pago.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase) *CatalogHandler {
	return &CatalogHandler{
		list: func(c *fiber.Ctx) ([]dto.CatalogItemResponse, error) {
			return uc.List(c.Context())
		},
		create: func(c *fiber.Ctx, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
			return uc.Create(c.Context(), GetUserID(c), in)
		},
		update: func(c *fiber.Ctx, id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
			return uc.Update(c.Context(), GetUserID(c), id, in)
		},
		delete: func(c *fiber.Ctx, id string) error {
			return uc.Delete(c.Context(), GetUserID(c), id)
		},
	}
}

// List devuelve todos los ítems del catálogo.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	items, err := h.list(c)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// Create crea un ítem del catálogo.
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return validationError(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return validationError(c, "name es requerido")
	}
	out, err := h.create(c, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un ítem del catálogo.
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return validationError(c, "cuerpo inválido")
	}
	out, err := h.update(c, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un ítem del catálogo.
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.delete(c, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
