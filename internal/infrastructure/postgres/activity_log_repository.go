package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
// La tabla es append-only: este adaptador nunca emite UPDATE ni DELETE.
type ActivityLogRepo struct {
	pool *pgxpool.Pool
}

// NewActivityLogRepository construye el adaptador de persistencia para el log de actividad.
func NewActivityLogRepository(pool *pgxpool.Pool) *ActivityLogRepo {
	return &ActivityLogRepo{pool: pool}
}

// Create inserta una entrada en el log. El metadata se guarda como jsonb.
func (r *ActivityLogRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	var metadata []byte
	if log.Metadata != nil {
		b, err := json.Marshal(log.Metadata)
		if err != nil {
			return fmt.Errorf("marshal activity metadata: %w", err)
		}
		metadata = b
	}
	query := `
		INSERT INTO activity_logs (id, user_id, action, description, entity_type, entity_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		log.ID, log.UserID, log.Action, log.Description, log.EntityType, log.EntityID,
		metadata, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List devuelve entradas del log más recientes primero, con el total de filas
// que coinciden con el filtro (para la paginación).
func (r *ActivityLogRepo) List(ctx context.Context, filter repository.ActivityLogFilter) ([]*entity.ActivityLog, int, error) {
	var conds []string
	var args []any
	if filter.Action != "" {
		args = append(args, filter.Action)
		conds = append(conds, "action = $"+strconv.Itoa(len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, "created_at <= $"+strconv.Itoa(len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM activity_logs` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activity logs: %w", err)
	}

	query := `
		SELECT id, user_id, action, description, entity_type, entity_id, metadata, created_at
		FROM activity_logs` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		var metadata []byte
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Action, &l.Description, &l.EntityType, &l.EntityID,
			&metadata, &l.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan activity log: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &l.Metadata); err != nil {
				return nil, 0, fmt.Errorf("unmarshal activity metadata: %w", err)
			}
		}
		logs = append(logs, &l)
	}
	return logs, total, rows.Err()
}
