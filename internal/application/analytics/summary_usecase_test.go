package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/application/analytics"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

const testPeriodID = "00000000-0000-0000-0000-0000000000aa"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeSummaryRepo struct {
	totals repository.PeriodTotals
}

func (f *fakeSummaryRepo) GetPeriodTotals(_ context.Context, _ string) (repository.PeriodTotals, error) {
	return f.totals, nil
}

type fakeBalanceRepo struct {
	latest *entity.ManualBalance
}

func (f *fakeBalanceRepo) Create(context.Context, *entity.ManualBalance) error { return nil }
func (f *fakeBalanceRepo) GetByID(context.Context, string) (*entity.ManualBalance, error) {
	return nil, nil
}
func (f *fakeBalanceRepo) List(context.Context, string) ([]*entity.ManualBalance, error) {
	return nil, nil
}
func (f *fakeBalanceRepo) GetLatestByPeriod(context.Context, string) (*entity.ManualBalance, error) {
	return f.latest, nil
}
func (f *fakeBalanceRepo) Update(context.Context, *entity.ManualBalance) error { return nil }
func (f *fakeBalanceRepo) Delete(context.Context, string) error                { return nil }

type fakePeriodRepo struct {
	period *entity.Period
}

func (f *fakePeriodRepo) Create(context.Context, *entity.Period) error { return nil }
func (f *fakePeriodRepo) GetByID(_ context.Context, id string) (*entity.Period, error) {
	if f.period != nil && f.period.ID == id {
		return f.period, nil
	}
	return nil, nil
}
func (f *fakePeriodRepo) List(context.Context) ([]*entity.Period, error) { return nil, nil }
func (f *fakePeriodRepo) Close(context.Context, string) error            { return nil }

func testPeriod() *entity.Period {
	return &entity.Period{
		ID:        testPeriodID,
		Name:      "Agosto 2026",
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Totales equivalentes a las transacciones:
// income/sales_general 100, income/income_person1 50,
// expense/expense_private_khaled 30, withdrawal/withdrawal_person1 20.
func exampleTotals() repository.PeriodTotals {
	return repository.PeriodTotals{
		TotalIncome:          decimal.NewFromInt(150),
		IncomeSalesGeneral:   decimal.NewFromInt(100),
		IncomePerson1:        decimal.NewFromInt(50),
		TotalExpenses:        decimal.NewFromInt(30),
		ExpensePrivateKhaled: decimal.NewFromInt(30),
		WithdrawalPerson1:    decimal.NewFromInt(20),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Sin balance manual: difference debe quedar en nil, nunca forzado a cero.
func TestSummary_SinBalanceManual(t *testing.T) {
	uc := analytics.NewSummaryUseCase(
		&fakeSummaryRepo{totals: exampleTotals()},
		&fakeBalanceRepo{latest: nil},
		&fakePeriodRepo{period: testPeriod()},
		nil,
	)

	out, err := uc.GetPeriodSummary(context.Background(), testPeriodID)
	require.NoError(t, err)

	assert.True(t, out.TotalIncome.Equal(decimal.NewFromInt(150)), "total_income = 100 + 50")
	assert.True(t, out.TotalExpenses.Equal(decimal.NewFromInt(30)))
	assert.True(t, out.TheoreticalBalance.Equal(decimal.NewFromInt(100)),
		"teórico = 150 - 30 - 20 - 0")
	assert.Nil(t, out.ManualCompanyBalance)
	assert.Nil(t, out.Difference, "sin balance manual no hay conciliación")
}

// Con balance manual de 120: difference = 120 - 100 = 20.
func TestSummary_ConBalanceManual(t *testing.T) {
	manual := decimal.NewFromInt(120)
	uc := analytics.NewSummaryUseCase(
		&fakeSummaryRepo{totals: exampleTotals()},
		&fakeBalanceRepo{latest: &entity.ManualBalance{
			ID:                   "mb-1",
			PeriodID:             testPeriodID,
			ManualCompanyBalance: manual,
		}},
		&fakePeriodRepo{period: testPeriod()},
		nil,
	)

	out, err := uc.GetPeriodSummary(context.Background(), testPeriodID)
	require.NoError(t, err)

	require.NotNil(t, out.ManualCompanyBalance)
	assert.True(t, out.ManualCompanyBalance.Equal(manual))
	require.NotNil(t, out.Difference)
	assert.True(t, out.Difference.Equal(decimal.NewFromInt(20)), "difference = 120 - 100")
}

// Período sin transacciones: todas las sumas valen cero, no error.
func TestSummary_PeriodoVacio(t *testing.T) {
	uc := analytics.NewSummaryUseCase(
		&fakeSummaryRepo{totals: repository.PeriodTotals{}},
		&fakeBalanceRepo{latest: nil},
		&fakePeriodRepo{period: testPeriod()},
		nil,
	)

	out, err := uc.GetPeriodSummary(context.Background(), testPeriodID)
	require.NoError(t, err)
	assert.True(t, out.TotalIncome.IsZero())
	assert.True(t, out.TotalExpenses.IsZero())
	assert.True(t, out.TheoreticalBalance.IsZero())
	assert.Nil(t, out.Difference)
}

// Período desconocido → ErrNotFound (el handler lo convierte en 404).
func TestSummary_PeriodoInexistente(t *testing.T) {
	uc := analytics.NewSummaryUseCase(
		&fakeSummaryRepo{},
		&fakeBalanceRepo{},
		&fakePeriodRepo{period: nil},
		nil,
	)

	_, err := uc.GetPeriodSummary(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
