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

var _ repository.ManualBalanceRepository = (*ManualBalanceRepo)(nil)

// ManualBalanceRepo implementación del puerto ManualBalanceRepository sobre PostgreSQL.
type ManualBalanceRepo struct {
	pool *pgxpool.Pool
}

// NewManualBalanceRepository construye el adaptador de persistencia para balances manuales.
func NewManualBalanceRepository(pool *pgxpool.Pool) *ManualBalanceRepo {
	return &ManualBalanceRepo{pool: pool}
}

const manualBalanceColumns = `id, period_id, manual_company_balance, note, created_at`

// Create persiste un nuevo balance manual.
func (r *ManualBalanceRepo) Create(ctx context.Context, b *entity.ManualBalance) error {
	query := `
		INSERT INTO manual_balances (` + manualBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		b.ID, b.PeriodID, b.ManualCompanyBalance, b.Note, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert manual balance: %w", err)
	}
	return nil
}

// GetByID obtiene un balance manual por ID, o nil si no existe.
func (r *ManualBalanceRepo) GetByID(ctx context.Context, id string) (*entity.ManualBalance, error) {
	query := `SELECT ` + manualBalanceColumns + ` FROM manual_balances WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get manual balance by id")
}

// List devuelve los balances manuales de un período, más recientes primero.
func (r *ManualBalanceRepo) List(ctx context.Context, periodID string) ([]*entity.ManualBalance, error) {
	query := `
		SELECT ` + manualBalanceColumns + `
		FROM manual_balances WHERE period_id = $1
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("list manual balances: %w", err)
	}
	defer rows.Close()

	var balances []*entity.ManualBalance
	for rows.Next() {
		var b entity.ManualBalance
		if err := rows.Scan(&b.ID, &b.PeriodID, &b.ManualCompanyBalance, &b.Note, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan manual balance: %w", err)
		}
		balances = append(balances, &b)
	}
	return balances, rows.Err()
}

// GetLatestByPeriod devuelve el balance manual creado más recientemente para
// el período, o nil si no existe ninguno.
func (r *ManualBalanceRepo) GetLatestByPeriod(ctx context.Context, periodID string) (*entity.ManualBalance, error) {
	query := `
		SELECT ` + manualBalanceColumns + `
		FROM manual_balances WHERE period_id = $1
		ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, periodID), "get latest manual balance")
}

// Update actualiza un balance manual.
func (r *ManualBalanceRepo) Update(ctx context.Context, b *entity.ManualBalance) error {
	query := `
		UPDATE manual_balances
		SET manual_company_balance = $2, note = $3
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, b.ID, b.ManualCompanyBalance, b.Note)
	if err != nil {
		return fmt.Errorf("update manual balance: %w", err)
	}
	return nil
}

// Delete elimina un balance manual por ID.
func (r *ManualBalanceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM manual_balances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete manual balance: %w", err)
	}
	return nil
}

func (r *ManualBalanceRepo) scanOne(row pgx.Row, op string) (*entity.ManualBalance, error) {
	var b entity.ManualBalance
	err := row.Scan(&b.ID, &b.PeriodID, &b.ManualCompanyBalance, &b.Note, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}
