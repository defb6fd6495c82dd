package repository

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// ExpenseCategoryRepository define el puerto de persistencia para ExpenseCategory.
type ExpenseCategoryRepository interface {
	Create(ctx context.Context, c *entity.ExpenseCategory) error
	GetByID(ctx context.Context, id string) (*entity.ExpenseCategory, error)
	List(ctx context.Context) ([]*entity.ExpenseCategory, error)
	Update(ctx context.Context, c *entity.ExpenseCategory) error
	Delete(ctx context.Context, id string) error
}

// PaymentMethodRepository define el puerto de persistencia para PaymentMethod.
type PaymentMethodRepository interface {
	Create(ctx context.Context, m *entity.PaymentMethod) error
	GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error)
	List(ctx context.Context) ([]*entity.PaymentMethod, error)
	Update(ctx context.Context, m *entity.PaymentMethod) error
	Delete(ctx context.Context, id string) error
}
