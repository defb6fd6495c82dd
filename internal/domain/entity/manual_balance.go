package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualBalance balance de empresa ingresado manualmente para un período.
// Pueden existir varias filas por período; solo la creada más recientemente
// es la autoritativa para la conciliación del dashboard.
type ManualBalance struct {
	ID                   string
	PeriodID             string
	ManualCompanyBalance decimal.Decimal
	Note                 string
	CreatedAt            time.Time
}
