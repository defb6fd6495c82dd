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

// ExpenseCategoryUseCase catálogo de categorías de gasto.
type ExpenseCategoryUseCase struct {
	repo     repository.ExpenseCategoryRepository
	recorder *audit.Recorder
}

// NewExpenseCategoryUseCase construye el caso de uso de categorías.
func NewExpenseCategoryUseCase(repo repository.ExpenseCategoryRepository, recorder *audit.Recorder) *ExpenseCategoryUseCase {
	return &ExpenseCategoryUseCase{repo: repo, recorder: recorder}
}

// List devuelve todas las categorías.
func (uc *ExpenseCategoryUseCase) List(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItemResponse, 0, len(items))
	for _, c := range items {
		out = append(out, dto.CatalogItemResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt})
	}
	return out, nil
}

// Create crea una categoría de gasto.
func (uc *ExpenseCategoryUseCase) Create(ctx context.Context, actorID string, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	now := time.Now().UTC()
	c := &entity.ExpenseCategory{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "CREATE_EXPENSE_CATEGORY", "categoría de gasto creada", "expense_category", c.ID, map[string]any{
		"name": c.Name,
	}); err != nil {
		return nil, err
	}
	return &dto.CatalogItemResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}, nil
}

// Update renombra una categoría de gasto.
func (uc *ExpenseCategoryUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name.Set {
		if !in.Name.Valid || in.Name.Value == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Name = in.Name.Value
	}
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "UPDATE_EXPENSE_CATEGORY", "categoría de gasto actualizada", "expense_category", c.ID, map[string]any{
		"name": c.Name,
	}); err != nil {
		return nil, err
	}
	return &dto.CatalogItemResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}, nil
}

// Delete elimina una categoría de gasto.
func (uc *ExpenseCategoryUseCase) Delete(ctx context.Context, actorID, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.recorder.Record(ctx, &actorID, "DELETE_EXPENSE_CATEGORY", "categoría de gasto eliminada", "expense_category", id, map[string]any{
		"name": c.Name,
	})
}

// PaymentMethodUseCase catálogo de medios de pago.
type PaymentMethodUseCase struct {
	repo     repository.PaymentMethodRepository
	recorder *audit.Recorder
}

// NewPaymentMethodUseCase construye el caso de uso de medios de pago.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository, recorder *audit.Recorder) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo, recorder: recorder}
}

// List devuelve todos los medios de pago.
func (uc *PaymentMethodUseCase) List(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItemResponse, 0, len(items))
	for _, m := range items {
		out = append(out, dto.CatalogItemResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt})
	}
	return out, nil
}

// Create crea un medio de pago.
func (uc *PaymentMethodUseCase) Create(ctx context.Context, actorID string, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	now := time.Now().UTC()
	m := &entity.PaymentMethod{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "CREATE_PAYMENT_METHOD", "medio de pago creado", "payment_method", m.ID, map[string]any{
		"name": m.Name,
	}); err != nil {
		return nil, err
	}
	return &dto.CatalogItemResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}, nil
}

// Update renombra un medio de pago.
func (uc *PaymentMethodUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name.Set {
		if !in.Name.Valid || in.Name.Value == "" {
			return nil, domain.ErrInvalidInput
		}
		m.Name = in.Name.Value
	}
	m.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "UPDATE_PAYMENT_METHOD", "medio de pago actualizado", "payment_method", m.ID, map[string]any{
		"name": m.Name,
	}); err != nil {
		return nil, err
	}
	return &dto.CatalogItemResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}, nil
}

// Delete elimina un medio de pago.
func (uc *PaymentMethodUseCase) Delete(ctx context.Context, actorID, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.recorder.Record(ctx, &actorID, "DELETE_PAYMENT_METHOD", "medio de pago eliminado", "payment_method", id, map[string]any{
		"name": m.Name,
	})
}
