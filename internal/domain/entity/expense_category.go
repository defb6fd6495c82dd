package entity

import "time"

// ExpenseCategory categoría para clasificar gastos.
type ExpenseCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
