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

// ExpenseUseCase gastos operativos con categoría y medio de pago.
type ExpenseUseCase struct {
	repo         repository.ExpenseRepository
	categoryRepo repository.ExpenseCategoryRepository
	recorder     *audit.Recorder
}

// NewExpenseUseCase construye el caso de uso de gastos.
func NewExpenseUseCase(
	repo repository.ExpenseRepository,
	categoryRepo repository.ExpenseCategoryRepository,
	recorder *audit.Recorder,
) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, categoryRepo: categoryRepo, recorder: recorder}
}

// List devuelve todos los gastos.
func (uc *ExpenseUseCase) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// requireCategory verifica que la categoría exista.
func (uc *ExpenseUseCase) requireCategory(ctx context.Context, id string) error {
	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Create registra un gasto.
func (uc *ExpenseUseCase) Create(ctx context.Context, actorID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if err := uc.requireCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	e := &entity.Expense{
		ID:              uuid.New().String(),
		Date:            date,
		Amount:          in.Amount,
		Description:     in.Description,
		CategoryID:      in.CategoryID,
		PaymentMethodID: in.PaymentMethodID,
		CreatedBy:       actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "CREATE_EXPENSE", "gasto registrado", "expense", e.ID, map[string]any{
		"amount":      e.Amount.String(),
		"category_id": e.CategoryID,
	}); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(e)
	return &resp, nil
}

// Update aplica un PATCH parcial a un gasto.
func (uc *ExpenseUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}

	if in.Date.Set {
		if !in.Date.Valid {
			return nil, domain.ErrInvalidInput
		}
		date, err := parseDate(in.Date.Value)
		if err != nil {
			return nil, err
		}
		e.Date = date
	}
	if in.Amount.Set {
		if !in.Amount.Valid {
			return nil, domain.ErrInvalidInput
		}
		e.Amount = in.Amount.Value
	}
	if in.Description.Set {
		if in.Description.Valid {
			e.Description = in.Description.Value
		} else {
			e.Description = ""
		}
	}
	if in.CategoryID.Set {
		if !in.CategoryID.Valid || in.CategoryID.Value == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.requireCategory(ctx, in.CategoryID.Value); err != nil {
			return nil, err
		}
		e.CategoryID = in.CategoryID.Value
	}
	if in.PaymentMethodID.Set {
		e.PaymentMethodID = in.PaymentMethodID.Ptr() // null limpia el medio de pago
	}
	e.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "UPDATE_EXPENSE", "gasto actualizado", "expense", e.ID, map[string]any{
		"amount":      e.Amount.String(),
		"category_id": e.CategoryID,
	}); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(e)
	return &resp, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, actorID, id string) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.recorder.Record(ctx, &actorID, "DELETE_EXPENSE", "gasto eliminado", "expense", id, map[string]any{
		"amount": e.Amount.String(),
	})
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:              e.ID,
		Date:            e.Date.Format(dateLayout),
		Amount:          e.Amount,
		Description:     e.Description,
		CategoryID:      e.CategoryID,
		PaymentMethodID: e.PaymentMethodID,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
