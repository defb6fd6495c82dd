package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	Date            string          `json:"date" validate:"required"` // YYYY-MM-DD
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	Description     string          `json:"description" validate:"max=500"`
	CategoryID      string          `json:"category_id" validate:"required,uuid"`
	PaymentMethodID *string         `json:"payment_method_id"`
}

// UpdateExpenseRequest PATCH parcial de un gasto.
type UpdateExpenseRequest struct {
	Date            Optional[string]          `json:"date"`
	Amount          Optional[decimal.Decimal] `json:"amount"`
	Description     Optional[string]          `json:"description"`
	CategoryID      Optional[string]          `json:"category_id"`
	PaymentMethodID Optional[string]          `json:"payment_method_id"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	CategoryID      string          `json:"category_id"`
	PaymentMethodID *string         `json:"payment_method_id"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
