// Package pdf implementa la exportación del resumen financiero de un período
// como documento PDF para archivo o envío a los socios.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app │ Período + rango de fechas        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INGRESOS:  total + desglose por source                      │
//	│  GASTOS:    total + desglose por source                      │
//	│  RETIROS / DEUDAS ENTRE SOCIOS                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BALANCE TEÓRICO / BALANCE MANUAL / DIFERENCIA               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/application/analytics"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPositive = &props.Color{Red: 22, Green: 120, Blue: 60}
	colorNegative = &props.Color{Red: 170, Green: 40, Blue: 40}
)

var _ analytics.SummaryPDFGenerator = (*SummaryPDFGenerator)(nil)

// SummaryPDFGenerator implementa analytics.SummaryPDFGenerator usando Maroto v2.
type SummaryPDFGenerator struct {
	appName string
}

// NewSummaryPDFGenerator construye el generador. appName aparece en el header.
func NewSummaryPDFGenerator(appName string) *SummaryPDFGenerator {
	return &SummaryPDFGenerator{appName: appName}
}

// Generate genera el PDF del resumen y devuelve sus bytes.
func (g *SummaryPDFGenerator) Generate(_ context.Context, summary *dto.PeriodSummaryDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Resumen financiero "+summary.Period.Name, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Ingresos
	m.AddRows(sectionTitleRow("INGRESOS"))
	m.AddRows(
		amountRow("Ventas generales", summary.IncomeSalesGeneral, false),
		amountRow("Ingresos socio 1", summary.IncomePerson1, false),
		amountRow("Ingresos socio 2", summary.IncomePerson2, false),
		amountRow("Total ingresos", summary.TotalIncome, true),
	)

	// Gastos
	m.AddRows(sectionTitleRow("GASTOS"))
	m.AddRows(
		amountRow("Gasto privado Khaled", summary.ExpensePrivateKhaled, false),
		amountRow("Gasto privado Waleed", summary.ExpensePrivateWaleed, false),
		amountRow("Total gastos", summary.TotalExpenses, true),
	)

	// Retiros y deudas entre socios
	m.AddRows(sectionTitleRow("RETIROS Y DEUDAS ENTRE SOCIOS"))
	m.AddRows(
		amountRow("Retiro socio 1", summary.WithdrawalPerson1, false),
		amountRow("Retiro socio 2", summary.WithdrawalPerson2, false),
		amountRow("Deuda hacia Khaled", summary.PartnerDebtToKhaled, false),
		amountRow("Deuda hacia Waleed", summary.PartnerDebtToWaleed, false),
	)

	// Conciliación
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.reconciliationRows(summary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y período con rango de fechas (der).
func (g *SummaryPDFGenerator) headerRow(summary *dto.PeriodSummaryDTO) core.Row {
	rango := summary.Period.StartDate + " a " + summary.Period.EndDate
	estado := "Abierto"
	if summary.Period.IsClosed {
		estado = "Cerrado"
	}
	return row.New(18).Add(
		col.New(6).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen financiero", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(summary.Period.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(estado, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func amountRow(label string, amount decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(8).Add(
			text.New(label, props.Text{Size: 9, Style: style}),
		),
		col.New(4).Add(
			text.New(amount.StringFixed(2), props.Text{
				Size: 9, Style: style, Align: align.Right,
			}),
		),
	)
}

// reconciliationRows: balance teórico, balance manual y diferencia.
// Cuando no hay balance manual se indica explícitamente en lugar de
// imprimir un cero engañoso.
func (g *SummaryPDFGenerator) reconciliationRows(summary *dto.PeriodSummaryDTO) []core.Row {
	rows := []core.Row{
		amountRow("Balance teórico", summary.TheoreticalBalance, true),
	}

	if summary.ManualCompanyBalance == nil {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(
				text.New("Sin balance manual registrado para este período", props.Text{
					Size: 9, Color: colorGray,
				}),
			),
		))
		return rows
	}

	rows = append(rows, amountRow("Balance manual", *summary.ManualCompanyBalance, true))

	diff := *summary.Difference
	color := colorPositive
	if diff.IsNegative() {
		color = colorNegative
	}
	rows = append(rows, row.New(7).Add(
		col.New(8).Add(
			text.New("Diferencia (manual - teórico)", props.Text{
				Size: 10, Style: fontstyle.Bold,
			}),
		),
		col.New(4).Add(
			text.New(diff.StringFixed(2), props.Text{
				Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: color,
			}),
		),
	))
	return rows
}
