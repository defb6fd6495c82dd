package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo consultas de agregación del resumen financiero. Solo lectura.
type SummaryRepo struct {
	pool *pgxpool.Pool
}

// NewSummaryRepository construye el adaptador de lectura del resumen.
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepo {
	return &SummaryRepo{pool: pool}
}

// GetPeriodTotals calcula en una sola consulta todas las sumas etiquetadas del
// período. COALESCE garantiza cero (no NULL) cuando no hay filas que coincidan,
// así un período sin transacciones produce un resumen válido en ceros.
func (r *SummaryRepo) GetPeriodTotals(ctx context.Context, periodID string) (repository.PeriodTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = $2), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $2 AND source = $6), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $2 AND source = $7), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $2 AND source = $8), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $3), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $3 AND source = $9), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $3 AND source = $10), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $4 AND source = $11), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $4 AND source = $12), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $5 AND source = $13), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $5 AND source = $14), 0)
		FROM transactions
		WHERE period_id = $1`

	var t repository.PeriodTotals
	err := r.pool.QueryRow(ctx, query,
		periodID,
		entity.TxTypeIncome, entity.TxTypeExpense, entity.TxTypeWithdrawal, entity.TxTypePartnerDebt,
		entity.SourceSalesGeneral, entity.SourceIncomePerson1, entity.SourceIncomePerson2,
		entity.SourceExpensePrivateKhaled, entity.SourceExpensePrivateWaleed,
		entity.SourceWithdrawalPerson1, entity.SourceWithdrawalPerson2,
		entity.SourcePartnerDebtToKhaled, entity.SourcePartnerDebtToWaleed,
	).Scan(
		&t.TotalIncome, &t.IncomeSalesGeneral, &t.IncomePerson1, &t.IncomePerson2,
		&t.TotalExpenses, &t.ExpensePrivateKhaled, &t.ExpensePrivateWaleed,
		&t.WithdrawalPerson1, &t.WithdrawalPerson2,
		&t.PartnerDebtToKhaled, &t.PartnerDebtToWaleed,
	)
	if err != nil {
		return repository.PeriodTotals{}, fmt.Errorf("period totals: %w", err)
	}
	return t, nil
}
