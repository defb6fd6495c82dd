package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

// ActivityLogUseCase consulta paginada del log de actividad (solo lectura).
type ActivityLogUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityLogUseCase construye el caso de uso del log de actividad.
func NewActivityLogUseCase(repo repository.ActivityLogRepository) *ActivityLogUseCase {
	return &ActivityLogUseCase{repo: repo}
}

// List devuelve entradas del log, más recientes primero, con filtros
// opcionales por acción, usuario y rango de fechas.
func (uc *ActivityLogUseCase) List(ctx context.Context, q dto.ActivityLogQuery) (*dto.ActivityLogListResponse, error) {
	q.Normalize()

	filter := repository.ActivityLogFilter{
		Action: q.Action,
		UserID: q.UserID,
		Limit:  q.Limit,
		Offset: q.Offset(),
	}
	if q.DateFrom != "" {
		t, err := parseDate(q.DateFrom)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DateFrom = &t
	}
	if q.DateTo != "" {
		t, err := parseDate(q.DateTo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Inclusivo: hasta el final del día indicado
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}

	logs, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		data = append(data, dto.ActivityLogResponse{
			ID:          l.ID,
			UserID:      l.UserID,
			Action:      l.Action,
			Description: l.Description,
			EntityType:  l.EntityType,
			EntityID:    l.EntityID,
			Metadata:    l.Metadata,
			CreatedAt:   l.CreatedAt,
		})
	}
	return &dto.ActivityLogListResponse{
		Data: data,
		Meta: dto.PageResponse{Page: q.Page, Limit: q.Limit, Total: total},
	}, nil
}
