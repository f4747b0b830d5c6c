// Package pdf implementa el reporte de tendencias descargable con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha del reporte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ventas / Gastos / Ganancia / Crecimiento          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ventas por franja horaria                           │
//	│  TABLA: Ingreso por categoría con participación             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Serie diaria (historial + hoy)                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/amethystakira/KiranaDash/internal/application/analytics"
	"github.com/amethystakira/KiranaDash/internal/application/dto"
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ analytics.TrendsReportGenerator = (*TrendsReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 93}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// TrendsReportGenerator implementa analytics.TrendsReportGenerator usando
// Maroto v2.
type TrendsReportGenerator struct {
	storeName string
}

// NewTrendsReportGenerator construye el generador. storeName encabeza el
// reporte.
func NewTrendsReportGenerator(storeName string) *TrendsReportGenerator {
	return &TrendsReportGenerator{storeName: storeName}
}

// GenerateTrendsReport genera el PDF y devuelve sus bytes.
func (g *TrendsReportGenerator) GenerateTrendsReport(
	_ context.Context,
	trends *dto.TrendsDTO,
	dashboard *dto.DashboardDTO,
	date time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Tendencias", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(dashboard, trends.SalesGrowth.StringFixed(1)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("VENTAS POR FRANJA HORARIA"))
	m.AddRows(hourlyHeaderRow())
	for _, r := range hourlyRows(trends.Hourly) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("INGRESO POR CATEGORÍA"))
	m.AddRows(categoryHeaderRow())
	for _, r := range categoryRows(trends.Categories) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("SERIE DIARIA"))
	m.AddRows(seriesHeaderRow())
	for _, r := range seriesRows(trends) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y fecha del reporte (der).
func headerRow(storeName string, date time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de tendencias del negocio", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE TENDENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(date.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
		),
	)
}

// summaryRow: métricas del día en cuatro columnas.
func summaryRow(dash *dto.DashboardDTO, growth string) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Size: 7, Color: colorGray, Top: 1, Align: align.Center,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center,
				Color: colorPrimary,
			}),
		)
	}
	return row.New(14).Add(
		metric("Ventas de hoy", dash.TodaysSales.StringFixed(2)),
		metric("Gastos", dash.TotalExpenses.StringFixed(2)),
		metric("Ganancia estimada", dash.Profit.StringFixed(0)),
		metric("Crecimiento", growth+"%"),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func hourlyHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Franja", 6, align.Left),
		headerCell("Ventas", 6, align.Right),
	)
}

func hourlyRows(buckets []dto.HourlyBucketDTO) []core.Row {
	result := make([]core.Row, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, row.New(6).Add(
			bodyCell(b.Hour, 6, align.Left),
			bodyCell(b.Sales.StringFixed(2), 6, align.Right),
		))
	}
	return result
}

func categoryHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Categoría", 6, align.Left),
		headerCell("Ingreso", 3, align.Right),
		headerCell("Participación", 3, align.Right),
	)
}

func categoryRows(categories []dto.CategoryShareDTO) []core.Row {
	if len(categories) == 0 {
		return []core.Row{row.New(6).Add(
			bodyCell("Sin ventas registradas hoy", 12, align.Left),
		)}
	}
	result := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		result = append(result, row.New(6).Add(
			bodyCell(c.Name, 6, align.Left),
			bodyCell(c.Revenue.StringFixed(2), 3, align.Right),
			bodyCell(fmt.Sprintf("%d%%", c.Percentage), 3, align.Right),
		))
	}
	return result
}

func seriesHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Fecha", 3, align.Left),
		headerCell("Ventas", 3, align.Right),
		headerCell("Transacciones", 3, align.Right),
		headerCell("Clientes", 3, align.Right),
	)
}

func seriesRows(trends *dto.TrendsDTO) []core.Row {
	result := make([]core.Row, 0, len(trends.Series))
	for _, d := range trends.Series {
		result = append(result, row.New(6).Add(
			bodyCell(d.Date, 3, align.Left),
			bodyCell(d.Sales.StringFixed(2), 3, align.Right),
			bodyCell(fmt.Sprintf("%d", d.Transactions), 3, align.Right),
			bodyCell(fmt.Sprintf("%d", d.Customers), 3, align.Right),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}
