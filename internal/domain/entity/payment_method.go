package entity

import "time"

// PaymentMethod medio de pago (efectivo, transferencia, etc.).
type PaymentMethod struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
