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

// ManualBalanceUseCase balances de empresa ingresados a mano por período.
// Pueden coexistir varios por período; el más reciente es el autoritativo.
type ManualBalanceUseCase struct {
	repo       repository.ManualBalanceRepository
	periodRepo repository.PeriodRepository
	recorder   *audit.Recorder
}

// NewManualBalanceUseCase construye el caso de uso de balances manuales.
func NewManualBalanceUseCase(
	repo repository.ManualBalanceRepository,
	periodRepo repository.PeriodRepository,
	recorder *audit.Recorder,
) *ManualBalanceUseCase {
	return &ManualBalanceUseCase{repo: repo, periodRepo: periodRepo, recorder: recorder}
}

// List devuelve balances manuales, opcionalmente filtrados por período.
func (uc *ManualBalanceUseCase) List(ctx context.Context, q dto.ManualBalanceQuery) ([]dto.ManualBalanceResponse, error) {
	balances, err := uc.repo.List(ctx, q.PeriodID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManualBalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, toManualBalanceResponse(b))
	}
	return out, nil
}

// Create registra un balance manual para un período existente.
func (uc *ManualBalanceUseCase) Create(ctx context.Context, actorID string, in dto.CreateManualBalanceRequest) (*dto.ManualBalanceResponse, error) {
	period, err := uc.periodRepo.GetByID(ctx, in.PeriodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrNotFound
	}
	b := &entity.ManualBalance{
		ID:                   uuid.New().String(),
		PeriodID:             in.PeriodID,
		ManualCompanyBalance: in.ManualCompanyBalance,
		Note:                 in.Note,
		CreatedAt:            time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "CREATE_MANUAL_BALANCE", "balance manual registrado", "manual_balance", b.ID, map[string]any{
		"period_id": b.PeriodID,
		"balance":   b.ManualCompanyBalance.String(),
	}); err != nil {
		return nil, err
	}
	resp := toManualBalanceResponse(b)
	return &resp, nil
}

// Update aplica un PATCH parcial a un balance manual.
func (uc *ManualBalanceUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateManualBalanceRequest) (*dto.ManualBalanceResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.ManualCompanyBalance.Set {
		if !in.ManualCompanyBalance.Valid {
			return nil, domain.ErrInvalidInput
		}
		b.ManualCompanyBalance = in.ManualCompanyBalance.Value
	}
	if in.Note.Set {
		if in.Note.Valid {
			b.Note = in.Note.Value
		} else {
			b.Note = ""
		}
	}
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "UPDATE_MANUAL_BALANCE", "balance manual actualizado", "manual_balance", b.ID, map[string]any{
		"period_id": b.PeriodID,
		"balance":   b.ManualCompanyBalance.String(),
	}); err != nil {
		return nil, err
	}
	resp := toManualBalanceResponse(b)
	return &resp, nil
}

// Delete elimina un balance manual.
func (uc *ManualBalanceUseCase) Delete(ctx context.Context, actorID, id string) error {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.recorder.Record(ctx, &actorID, "DELETE_MANUAL_BALANCE", "balance manual eliminado", "manual_balance", id, map[string]any{
		"period_id": b.PeriodID,
	})
}

func toManualBalanceResponse(b *entity.ManualBalance) dto.ManualBalanceResponse {
	return dto.ManualBalanceResponse{
		ID:                   b.ID,
		PeriodID:             b.PeriodID,
		ManualCompanyBalance: b.ManualCompanyBalance,
		Note:                 b.Note,
		CreatedAt:            b.CreatedAt,
	}
}
