package repository

import (
	"context"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// ActivityLogFilter filtros para listar el log de actividad.
type ActivityLogFilter struct {
	Action   string // vacío = todas las acciones
	UserID   string // vacío = todos los usuarios
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// ActivityLogRepository define el puerto de persistencia para ActivityLog.
// Append-only: no hay Update ni Delete.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	List(ctx context.Context, filter ActivityLogFilter) ([]*entity.ActivityLog, int, error)
}
