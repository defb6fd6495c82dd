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

var _ repository.PeriodRepository = (*PeriodRepo)(nil)

// PeriodRepo implementación del puerto PeriodRepository sobre PostgreSQL.
type PeriodRepo struct {
	pool *pgxpool.Pool
}

// NewPeriodRepository construye el adaptador de persistencia para períodos.
func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepo {
	return &PeriodRepo{pool: pool}
}

// Create persiste un nuevo período.
func (r *PeriodRepo) Create(ctx context.Context, p *entity.Period) error {
	query := `
		INSERT INTO periods (id, name, start_date, end_date, is_closed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.StartDate, p.EndDate, p.IsClosed, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert period: %w", err)
	}
	return nil
}

// GetByID obtiene un período por ID, o nil si no existe.
func (r *PeriodRepo) GetByID(ctx context.Context, id string) (*entity.Period, error) {
	query := `
		SELECT id, name, start_date, end_date, is_closed, created_at, updated_at
		FROM periods WHERE id = $1`
	var p entity.Period
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.IsClosed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get period by id: %w", err)
	}
	return &p, nil
}

// List devuelve todos los períodos, más recientes primero.
func (r *PeriodRepo) List(ctx context.Context) ([]*entity.Period, error) {
	query := `
		SELECT id, name, start_date, end_date, is_closed, created_at, updated_at
		FROM periods ORDER BY start_date DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	var periods []*entity.Period
	for rows.Next() {
		var p entity.Period
		if err := rows.Scan(
			&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.IsClosed, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		periods = append(periods, &p)
	}
	return periods, rows.Err()
}

// Close marca el período como cerrado. Idempotente: cerrar un período ya
// cerrado no modifica nada.
func (r *PeriodRepo) Close(ctx context.Context, id string) error {
	query := `UPDATE periods SET is_closed = TRUE, updated_at = NOW() WHERE id = $1 AND is_closed = FALSE`
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("close period: %w", err)
	}
	return nil
}
