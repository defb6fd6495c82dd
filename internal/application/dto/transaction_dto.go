package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para crear una transacción.
type CreateTransactionRequest struct {
	PeriodID    string          `json:"period_id" validate:"required,uuid"`
	Date        string          `json:"date" validate:"required"` // YYYY-MM-DD
	Type        string          `json:"type" validate:"required,oneof=income expense withdrawal partner_debt"`
	Source      string          `json:"source" validate:"required,max=100"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"max=500"`
	CategoryID  *string         `json:"category_id"`
}

// UpdateTransactionRequest PATCH parcial de una transacción.
type UpdateTransactionRequest struct {
	PeriodID    Optional[string]          `json:"period_id"`
	Date        Optional[string]          `json:"date"`
	Type        Optional[string]          `json:"type"`
	Source      Optional[string]          `json:"source"`
	Amount      Optional[decimal.Decimal] `json:"amount"`
	Description Optional[string]          `json:"description"`
	CategoryID  Optional[string]          `json:"category_id"`
}

// TransactionQuery filtros de listado.
type TransactionQuery struct {
	PeriodID string `query:"period_id"`
	Type     string `query:"type"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	PeriodID    string          `json:"period_id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  *string         `json:"category_id"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
