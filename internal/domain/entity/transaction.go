package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TxTypeIncome      = "income"
	TxTypeExpense     = "expense"
	TxTypeWithdrawal  = "withdrawal"
	TxTypePartnerDebt = "partner_debt"
)

// Sources (etiquetas libres) que el resumen del dashboard reconoce.
const (
	SourceSalesGeneral         = "sales_general"
	SourceIncomePerson1        = "income_person1"
	SourceIncomePerson2        = "income_person2"
	SourceExpensePrivateKhaled = "expense_private_khaled"
	SourceExpensePrivateWaleed = "expense_private_waleed"
	SourceWithdrawalPerson1    = "withdrawal_person1"
	SourceWithdrawalPerson2    = "withdrawal_person2"
	SourcePartnerDebtToKhaled  = "partner_debt_to_khaled"
	SourcePartnerDebtToWaleed  = "partner_debt_to_waleed"
)

// ValidTxType valida el tipo de transacción.
func ValidTxType(t string) bool {
	switch t {
	case TxTypeIncome, TxTypeExpense, TxTypeWithdrawal, TxTypePartnerDebt:
		return true
	}
	return false
}

// Transaction representa un movimiento monetario con signo dentro de un período.
type Transaction struct {
	ID          string
	PeriodID    string
	Date        time.Time
	Type        string // income, expense, withdrawal, partner_debt
	Source      string // etiqueta libre, ej. sales_general, withdrawal_person1
	Amount      decimal.Decimal
	Description string
	CategoryID  *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
