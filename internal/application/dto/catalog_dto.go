package dto

import "time"

// CreateCatalogItemRequest entrada para crear una categoría de gasto o un medio de pago.
type CreateCatalogItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateCatalogItemRequest PATCH parcial de una categoría o medio de pago.
type UpdateCatalogItemRequest struct {
	Name Optional[string] `json:"name"`
}

// CatalogItemResponse salida de una categoría de gasto o medio de pago.
type CatalogItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
