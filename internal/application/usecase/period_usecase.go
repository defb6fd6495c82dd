package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/finanzas-api/internal/application/audit"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// parseDate interpreta fechas YYYY-MM-DD del cliente.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// PeriodUseCase gestión de períodos contables.
type PeriodUseCase struct {
	repo     repository.PeriodRepository
	recorder *audit.Recorder
}

// NewPeriodUseCase construye el caso de uso de períodos.
func NewPeriodUseCase(repo repository.PeriodRepository, recorder *audit.Recorder) *PeriodUseCase {
	return &PeriodUseCase{repo: repo, recorder: recorder}
}

// List devuelve todos los períodos.
func (uc *PeriodUseCase) List(ctx context.Context) ([]dto.PeriodResponse, error) {
	periods, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, ToPeriodResponse(p))
	}
	return out, nil
}

// Create crea un período. end_date no puede ser anterior a start_date.
func (uc *PeriodUseCase) Create(ctx context.Context, actorID string, in dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	start, err := parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	period := &entity.Period{
		ID:        uuid.New().String(),
		Name:      in.Name,
		StartDate: start,
		EndDate:   end,
		IsClosed:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, period); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "CREATE_PERIOD", "período creado", "period", period.ID, map[string]any{
		"name":       period.Name,
		"start_date": in.StartDate,
		"end_date":   in.EndDate,
	}); err != nil {
		return nil, err
	}
	resp := ToPeriodResponse(period)
	return &resp, nil
}

// Close marca el período como cerrado. Si ya estaba cerrado no hay mutación
// y no se escribe auditoría.
func (uc *PeriodUseCase) Close(ctx context.Context, actorID, id string) (*dto.PeriodResponse, error) {
	period, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrNotFound
	}
	if !period.IsClosed {
		if err := uc.repo.Close(ctx, id); err != nil {
			return nil, err
		}
		period.IsClosed = true
		period.UpdatedAt = time.Now().UTC()
		if err := uc.recorder.Record(ctx, &actorID, "CLOSE_PERIOD", "período cerrado", "period", id, map[string]any{
			"name": period.Name,
		}); err != nil {
			return nil, err
		}
	}
	resp := ToPeriodResponse(period)
	return &resp, nil
}

// ToPeriodResponse convierte la entidad Period en su DTO de salida.
func ToPeriodResponse(p *entity.Period) dto.PeriodResponse {
	return dto.PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format(dateLayout),
		EndDate:   p.EndDate.Format(dateLayout),
		IsClosed:  p.IsClosed,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
