package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// PeriodTotals sumas etiquetadas de las transacciones de un período.
// Las produce la DB; el use case las convierte en DTO. Todas valen cero
// cuando no hay filas que coincidan (agregación vacía es un resultado válido).
type PeriodTotals struct {
	TotalIncome          decimal.Decimal // type = income
	IncomeSalesGeneral   decimal.Decimal // income / sales_general
	IncomePerson1        decimal.Decimal // income / income_person1
	IncomePerson2        decimal.Decimal // income / income_person2
	TotalExpenses        decimal.Decimal // type = expense
	ExpensePrivateKhaled decimal.Decimal // expense / expense_private_khaled
	ExpensePrivateWaleed decimal.Decimal // expense / expense_private_waleed
	WithdrawalPerson1    decimal.Decimal // withdrawal / withdrawal_person1
	WithdrawalPerson2    decimal.Decimal // withdrawal / withdrawal_person2
	PartnerDebtToKhaled  decimal.Decimal // partner_debt / partner_debt_to_khaled
	PartnerDebtToWaleed  decimal.Decimal // partner_debt / partner_debt_to_waleed
}

// SummaryRepository define las consultas de lectura para el resumen financiero.
// Las implementaciones son read-only (no modifican datos).
type SummaryRepository interface {
	// GetPeriodTotals devuelve las sumas etiquetadas del período.
	// Usa COALESCE para devolver cero cuando el período no tiene transacciones.
	GetPeriodTotals(ctx context.Context, periodID string) (PeriodTotals, error)
}
