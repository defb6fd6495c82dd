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

// TransactionUseCase movimientos monetarios por período.
type TransactionUseCase struct {
	repo       repository.TransactionRepository
	periodRepo repository.PeriodRepository
	recorder   *audit.Recorder
}

// NewTransactionUseCase construye el caso de uso de transacciones.
func NewTransactionUseCase(
	repo repository.TransactionRepository,
	periodRepo repository.PeriodRepository,
	recorder *audit.Recorder,
) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, periodRepo: periodRepo, recorder: recorder}
}

// List devuelve transacciones, opcionalmente filtradas por período y tipo.
func (uc *TransactionUseCase) List(ctx context.Context, q dto.TransactionQuery) ([]dto.TransactionResponse, error) {
	txs, err := uc.repo.List(ctx, repository.TransactionFilter{PeriodID: q.PeriodID, Type: q.Type})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out, nil
}

// requireOpenPeriod verifica que el período exista y esté abierto.
// Período inexistente → ErrNotFound; cerrado → ErrPeriodClosed (409).
func (uc *TransactionUseCase) requireOpenPeriod(ctx context.Context, periodID string) error {
	period, err := uc.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return err
	}
	if period == nil {
		return domain.ErrNotFound
	}
	if period.IsClosed {
		return domain.ErrPeriodClosed
	}
	return nil
}

// Create registra una transacción en un período abierto.
func (uc *TransactionUseCase) Create(ctx context.Context, actorID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTxType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if err := uc.requireOpenPeriod(ctx, in.PeriodID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		PeriodID:    in.PeriodID,
		Date:        date,
		Type:        in.Type,
		Source:      in.Source,
		Amount:      in.Amount,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "CREATE_TRANSACTION", "transacción creada", "transaction", tx.ID, map[string]any{
		"period_id": tx.PeriodID,
		"type":      tx.Type,
		"source":    tx.Source,
		"amount":    tx.Amount.String(),
	}); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Update aplica un PATCH parcial. Mover la transacción a un período cerrado
// está prohibido (409).
func (uc *TransactionUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}

	if in.PeriodID.Set {
		if !in.PeriodID.Valid || in.PeriodID.Value == "" {
			return nil, domain.ErrInvalidInput
		}
		if in.PeriodID.Value != tx.PeriodID {
			if err := uc.requireOpenPeriod(ctx, in.PeriodID.Value); err != nil {
				return nil, err
			}
			tx.PeriodID = in.PeriodID.Value
		}
	}
	if in.Date.Set {
		if !in.Date.Valid {
			return nil, domain.ErrInvalidInput
		}
		date, err := parseDate(in.Date.Value)
		if err != nil {
			return nil, err
		}
		tx.Date = date
	}
	if in.Type.Set {
		if !in.Type.Valid || !entity.ValidTxType(in.Type.Value) {
			return nil, domain.ErrInvalidInput
		}
		tx.Type = in.Type.Value
	}
	if in.Source.Set {
		if !in.Source.Valid || in.Source.Value == "" {
			return nil, domain.ErrInvalidInput
		}
		tx.Source = in.Source.Value
	}
	if in.Amount.Set {
		if !in.Amount.Valid {
			return nil, domain.ErrInvalidInput
		}
		tx.Amount = in.Amount.Value
	}
	if in.Description.Set {
		if in.Description.Valid {
			tx.Description = in.Description.Value
		} else {
			tx.Description = ""
		}
	}
	if in.CategoryID.Set {
		tx.CategoryID = in.CategoryID.Ptr() // null limpia la categoría
	}
	tx.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "UPDATE_TRANSACTION", "transacción actualizada", "transaction", tx.ID, map[string]any{
		"period_id": tx.PeriodID,
		"type":      tx.Type,
		"source":    tx.Source,
		"amount":    tx.Amount.String(),
	}); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Delete elimina una transacción.
func (uc *TransactionUseCase) Delete(ctx context.Context, actorID, id string) error {
	tx, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.recorder.Record(ctx, &actorID, "DELETE_TRANSACTION", "transacción eliminada", "transaction", id, map[string]any{
		"period_id": tx.PeriodID,
		"type":      tx.Type,
		"amount":    tx.Amount.String(),
	})
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID,
		PeriodID:    tx.PeriodID,
		Date:        tx.Date.Format(dateLayout),
		Type:        tx.Type,
		Source:      tx.Source,
		Amount:      tx.Amount,
		Description: tx.Description,
		CategoryID:  tx.CategoryID,
		CreatedBy:   tx.CreatedBy,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}
