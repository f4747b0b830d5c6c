package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/infrastructure/pdf"
)

// Smoke test: el reporte debe generarse sin error y ser un PDF real incluso
// con el día vacío (sin ventas, sin categorías).
func TestGenerateTrendsReport_ProducePDF(t *testing.T) {
	gen := pdf.NewTrendsReportGenerator("Tienda de Prueba")

	dashboard := &dto.DashboardDTO{
		TodaysSales:   decimal.NewFromInt(1200),
		TotalExpenses: decimal.NewFromInt(300),
		Profit:        decimal.NewFromInt(180),
	}

	fullTrends := &dto.TrendsDTO{
		Hourly: []dto.HourlyBucketDTO{
			{Hour: "8AM", Sales: decimal.NewFromInt(200)},
			{Hour: "10AM", Sales: decimal.Zero},
		},
		Categories: []dto.CategoryShareDTO{
			{Name: "Snacks", Revenue: decimal.NewFromInt(700), Percentage: 58},
			{Name: "Dairy", Revenue: decimal.NewFromInt(500), Percentage: 42},
		},
		SalesGrowth: decimal.NewFromInt(12),
	}

	raw, err := gen.GenerateTrendsReport(context.Background(), fullTrends, dashboard, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]), "la salida debe ser un documento PDF")
}

func TestGenerateTrendsReport_DiaVacio(t *testing.T) {
	gen := pdf.NewTrendsReportGenerator("Tienda de Prueba")

	raw, err := gen.GenerateTrendsReport(context.Background(), &dto.TrendsDTO{}, &dto.DashboardDTO{}, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, raw, "el día vacío igual produce reporte")
}
