package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

var (
	_ repository.ExpenseCategoryRepository = (*ExpenseCategoryRepo)(nil)
	_ repository.PaymentMethodRepository   = (*PaymentMethodRepo)(nil)
)

// ExpenseCategoryRepo implementación del puerto ExpenseCategoryRepository sobre PostgreSQL.
type ExpenseCategoryRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseCategoryRepository construye el adaptador de persistencia para categorías de gasto.
func NewExpenseCategoryRepository(pool *pgxpool.Pool) *ExpenseCategoryRepo {
	return &ExpenseCategoryRepo{pool: pool}
}

// Create persiste una nueva categoría.
func (r *ExpenseCategoryRepo) Create(ctx context.Context, c *entity.ExpenseCategory) error {
	query := `
		INSERT INTO expense_categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.CreatedAt, c.UpdatedAt); err != nil {
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID, o nil si no existe.
func (r *ExpenseCategoryRepo) GetByID(ctx context.Context, id string) (*entity.ExpenseCategory, error) {
	query := `SELECT id, name, created_at, updated_at FROM expense_categories WHERE id = $1`
	var c entity.ExpenseCategory
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense category by id: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *ExpenseCategoryRepo) List(ctx context.Context) ([]*entity.ExpenseCategory, error) {
	query := `SELECT id, name, created_at, updated_at FROM expense_categories ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.ExpenseCategory
	for rows.Next() {
		var c entity.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// Update actualiza una categoría.
func (r *ExpenseCategoryRepo) Update(ctx context.Context, c *entity.ExpenseCategory) error {
	query := `UPDATE expense_categories SET name = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.UpdatedAt); err != nil {
		return fmt.Errorf("update expense category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *ExpenseCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM expense_categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete expense category: %w", err)
	}
	return nil
}

// PaymentMethodRepo implementación del puerto PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentMethodRepository construye el adaptador de persistencia para medios de pago.
func NewPaymentMethodRepository(pool *pgxpool.Pool) *PaymentMethodRepo {
	return &PaymentMethodRepo{pool: pool}
}

// Create persiste un nuevo medio de pago.
func (r *PaymentMethodRepo) Create(ctx context.Context, m *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, m.ID, m.Name, m.CreatedAt, m.UpdatedAt); err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene un medio de pago por ID, o nil si no existe.
func (r *PaymentMethodRepo) GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error) {
	query := `SELECT id, name, created_at, updated_at FROM payment_methods WHERE id = $1`
	var m entity.PaymentMethod
	err := r.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method by id: %w", err)
	}
	return &m, nil
}

// List devuelve todos los medios de pago ordenados por nombre.
func (r *PaymentMethodRepo) List(ctx context.Context) ([]*entity.PaymentMethod, error) {
	query := `SELECT id, name, created_at, updated_at FROM payment_methods ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, &m)
	}
	return methods, rows.Err()
}

// Update actualiza un medio de pago.
func (r *PaymentMethodRepo) Update(ctx context.Context, m *entity.PaymentMethod) error {
	query := `UPDATE payment_methods SET name = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, m.ID, m.Name, m.UpdatedAt); err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// Delete elimina un medio de pago por ID.
func (r *PaymentMethodRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}
