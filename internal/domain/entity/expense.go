package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto operativo registrado fuera del flujo de
// transacciones por período (gastos del día a día con categoría y medio de pago).
type Expense struct {
	ID              string
	Date            time.Time
	Amount          decimal.Decimal
	Description     string
	CategoryID      string
	PaymentMethodID *string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
