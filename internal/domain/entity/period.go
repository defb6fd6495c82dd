package entity

import "time"

// Period representa un intervalo contable al que se asocian transacciones y
// balances manuales. Una vez cerrado (IsClosed = true), no se aceptan
// transacciones nuevas ni movidas hacia él.
type Period struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	IsClosed  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
