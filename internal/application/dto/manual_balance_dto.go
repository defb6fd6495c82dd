package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateManualBalanceRequest entrada para registrar un balance manual.
type CreateManualBalanceRequest struct {
	PeriodID             string          `json:"period_id" validate:"required,uuid"`
	ManualCompanyBalance decimal.Decimal `json:"manual_company_balance" validate:"required"`
	Note                 string          `json:"note" validate:"max=500"`
}

// UpdateManualBalanceRequest PATCH parcial de un balance manual.
type UpdateManualBalanceRequest struct {
	ManualCompanyBalance Optional[decimal.Decimal] `json:"manual_company_balance"`
	Note                 Optional[string]          `json:"note"`
}

// ManualBalanceQuery filtros de listado.
type ManualBalanceQuery struct {
	PeriodID string `query:"period_id"`
}

// ManualBalanceResponse salida de un balance manual.
type ManualBalanceResponse struct {
	ID                   string          `json:"id"`
	PeriodID             string          `json:"period_id"`
	ManualCompanyBalance decimal.Decimal `json:"manual_company_balance"`
	Note                 string          `json:"note"`
	CreatedAt            time.Time       `json:"created_at"`
}
