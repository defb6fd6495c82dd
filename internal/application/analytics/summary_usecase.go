// Package analytics contiene el caso de uso del resumen financiero por
// período que consume el dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

// SummaryPDFGenerator contrato mínimo para exportar el resumen como PDF.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el use case
// a la librería de PDF.
type SummaryPDFGenerator interface {
	Generate(ctx context.Context, summary *dto.PeriodSummaryDTO) ([]byte, error)
}

// SummaryUseCase calcula el resumen financiero de un período:
// sumas etiquetadas de transacciones, balance teórico y varianza contra el
// balance manual más reciente.
//
// Fuente de datos: SummaryRepository y ManualBalanceRepository (read-only).
type SummaryUseCase struct {
	summaryRepo repository.SummaryRepository
	balanceRepo repository.ManualBalanceRepository
	periodRepo  repository.PeriodRepository
	pdfGen      SummaryPDFGenerator
}

// NewSummaryUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone la exportación a PDF.
func NewSummaryUseCase(
	summaryRepo repository.SummaryRepository,
	balanceRepo repository.ManualBalanceRepository,
	periodRepo repository.PeriodRepository,
	pdfGen SummaryPDFGenerator,
) *SummaryUseCase {
	return &SummaryUseCase{
		summaryRepo: summaryRepo,
		balanceRepo: balanceRepo,
		periodRepo:  periodRepo,
		pdfGen:      pdfGen,
	}
}

// GetPeriodSummary construye el PeriodSummaryDTO del período indicado.
//
// Dos llamadas en paralelo:
//  1. GetPeriodTotals          → las sumas etiquetadas
//  2. GetLatestByPeriod        → balance manual autoritativo (o ninguno)
//
// balance_teórico = ingresos_totales − gastos_totales − retiro_p1 − retiro_p2.
// difference = balance_manual − balance_teórico solo si hay balance manual;
// en su ausencia queda en nil (nunca se fuerza a cero).
func (uc *SummaryUseCase) GetPeriodSummary(ctx context.Context, periodID string) (*dto.PeriodSummaryDTO, error) {
	period, err := uc.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrNotFound
	}

	type totalsResult struct {
		totals repository.PeriodTotals
		err    error
	}
	type balanceResult struct {
		balance *entity.ManualBalance
		err     error
	}

	totalsCh := make(chan totalsResult, 1)
	balanceCh := make(chan balanceResult, 1)

	go func() {
		totals, err := uc.summaryRepo.GetPeriodTotals(ctx, periodID)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		balance, err := uc.balanceRepo.GetLatestByPeriod(ctx, periodID)
		balanceCh <- balanceResult{balance, err}
	}()

	totals := <-totalsCh
	balance := <-balanceCh

	if totals.err != nil {
		return nil, fmt.Errorf("summary: totales del período: %w", totals.err)
	}
	if balance.err != nil {
		return nil, fmt.Errorf("summary: balance manual: %w", balance.err)
	}

	t := totals.totals
	theoretical := t.TotalIncome.
		Sub(t.TotalExpenses).
		Sub(t.WithdrawalPerson1).
		Sub(t.WithdrawalPerson2)

	out := &dto.PeriodSummaryDTO{
		Period:               usecase.ToPeriodResponse(period),
		TotalIncome:          t.TotalIncome,
		IncomeSalesGeneral:   t.IncomeSalesGeneral,
		IncomePerson1:        t.IncomePerson1,
		IncomePerson2:        t.IncomePerson2,
		TotalExpenses:        t.TotalExpenses,
		ExpensePrivateKhaled: t.ExpensePrivateKhaled,
		ExpensePrivateWaleed: t.ExpensePrivateWaleed,
		WithdrawalPerson1:    t.WithdrawalPerson1,
		WithdrawalPerson2:    t.WithdrawalPerson2,
		PartnerDebtToKhaled:  t.PartnerDebtToKhaled,
		PartnerDebtToWaleed:  t.PartnerDebtToWaleed,
		TheoreticalBalance:   theoretical,
	}

	if balance.balance != nil {
		manual := balance.balance.ManualCompanyBalance
		diff := manual.Sub(theoretical)
		out.ManualCompanyBalance = &manual
		out.Difference = &diff
	}

	return out, nil
}

// GetPeriodSummaryPDF genera la representación PDF del resumen.
func (uc *SummaryUseCase) GetPeriodSummaryPDF(ctx context.Context, periodID string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("summary: generador PDF no configurado")
	}
	summary, err := uc.GetPeriodSummary(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.Generate(ctx, summary)
}
