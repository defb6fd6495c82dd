package repository

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// ManualBalanceRepository define el puerto de persistencia para ManualBalance.
type ManualBalanceRepository interface {
	Create(ctx context.Context, b *entity.ManualBalance) error
	GetByID(ctx context.Context, id string) (*entity.ManualBalance, error)
	List(ctx context.Context, periodID string) ([]*entity.ManualBalance, error)
	// GetLatestByPeriod devuelve el balance manual creado más recientemente para
	// el período, o nil si no existe ninguno.
	GetLatestByPeriod(ctx context.Context, periodID string) (*entity.ManualBalance, error)
	Update(ctx context.Context, b *entity.ManualBalance) error
	Delete(ctx context.Context, id string) error
}
