package dto

import "github.com/shopspring/decimal"

// PeriodSummaryDTO resumen financiero de un período para el dashboard.
//
// Difference es nil cuando el período no tiene balance manual: la ausencia de
// conciliación es semánticamente distinta de una conciliación en cero.
type PeriodSummaryDTO struct {
	Period PeriodResponse `json:"period"`

	TotalIncome        decimal.Decimal `json:"total_income"`
	IncomeSalesGeneral decimal.Decimal `json:"income_sales_general"`
	IncomePerson1      decimal.Decimal `json:"income_person1"`
	IncomePerson2      decimal.Decimal `json:"income_person2"`

	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	ExpensePrivateKhaled decimal.Decimal `json:"expense_private_khaled"`
	ExpensePrivateWaleed decimal.Decimal `json:"expense_private_waleed"`

	WithdrawalPerson1 decimal.Decimal `json:"withdrawal_person1"`
	WithdrawalPerson2 decimal.Decimal `json:"withdrawal_person2"`

	PartnerDebtToKhaled decimal.Decimal `json:"partner_debt_to_khaled"`
	PartnerDebtToWaleed decimal.Decimal `json:"partner_debt_to_waleed"`

	TheoreticalBalance   decimal.Decimal  `json:"theoretical_balance"`
	ManualCompanyBalance *decimal.Decimal `json:"manual_company_balance"`
	Difference           *decimal.Decimal `json:"difference"`
}
