package repository

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// PeriodRepository define el puerto de persistencia para Period.
type PeriodRepository interface {
	Create(ctx context.Context, period *entity.Period) error
	GetByID(ctx context.Context, id string) (*entity.Period, error)
	List(ctx context.Context) ([]*entity.Period, error)
	// Close marca el período como cerrado. Idempotente.
	Close(ctx context.Context, id string) error
}
