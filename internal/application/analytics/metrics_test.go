package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amethystakira/KiranaDash/internal/application/analytics"
	"github.com/amethystakira/KiranaDash/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func money(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func snapshotWith(txs []entity.Transaction, exps []entity.Expense) *entity.LedgerSnapshot {
	return &entity.LedgerSnapshot{
		TodayTransactions: txs,
		TodayExpenses:     exps,
		Settings:          entity.DefaultSettings(),
	}
}

func tx(id, total string) entity.Transaction {
	return entity.Transaction{ID: id, TotalAmount: money(total)}
}

func expense(amount string) entity.Expense {
	return entity.Expense{ID: "e1", Title: "luz", Amount: money(amount), Category: entity.ExpenseUtility}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ganancia estimada
// ──────────────────────────────────────────────────────────────────────────────

// La ganancia es ventas × 0.40 − gastos, redondeada a entero con mitades hacia
// arriba.
func TestComputeDashboard_GananciaEstimada(t *testing.T) {
	snap := snapshotWith(
		[]entity.Transaction{tx("t1", "1000")},
		[]entity.Expense{expense("150")},
	)

	dash := analytics.ComputeDashboard(snap)

	assert.True(t, money("250").Equal(dash.Profit),
		"profit debe ser 1000×0.40 − 150 = 250, fue %s", dash.Profit)
}

// Con gastos mayores al margen la ganancia es negativa; el redondeo de mitades
// va hacia arriba también en negativos (−0.5 → 0, −1.5 → −1).
func TestComputeDashboard_GananciaNegativaRedondeoMitades(t *testing.T) {
	snap := snapshotWith(
		[]entity.Transaction{tx("t1", "10")}, // margen 4
		[]entity.Expense{expense("5.50")},    // 4 − 5.50 = −1.50
	)

	dash := analytics.ComputeDashboard(snap)

	assert.True(t, money("-1").Equal(dash.Profit),
		"−1.5 debe redondear a −1, fue %s", dash.Profit)
}

func TestComputeDashboard_DiaVacioTodoEnCero(t *testing.T) {
	dash := analytics.ComputeDashboard(snapshotWith(nil, nil))

	assert.True(t, dash.TodaysSales.IsZero())
	assert.True(t, dash.TotalExpenses.IsZero())
	assert.True(t, dash.Profit.IsZero())
	assert.True(t, dash.SalesGrowth.IsZero())
	assert.True(t, dash.AvgBilling.IsZero(), "sin transacciones el ticket promedio es 0, no una división por cero")
	assert.Zero(t, dash.TransactionCount)
	assert.Zero(t, dash.CustomerCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crecimiento de ventas: las tres ramas
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDashboard_CrecimientoContraAyer(t *testing.T) {
	snap := snapshotWith([]entity.Transaction{tx("t1", "150")}, nil)
	snap.History = []entity.DailyStat{{Date: "2026-08-29", Sales: money("100")}}

	dash := analytics.ComputeDashboard(snap)

	assert.True(t, money("50").Equal(dash.SalesGrowth),
		"de 100 a 150 el crecimiento es 50%%, fue %s", dash.SalesGrowth)
}

func TestComputeDashboard_CrecimientoAyerCeroHoyPositivo(t *testing.T) {
	snap := snapshotWith([]entity.Transaction{tx("t1", "80")}, nil)
	snap.History = []entity.DailyStat{{Date: "2026-08-29", Sales: decimal.Zero}}

	dash := analytics.ComputeDashboard(snap)

	assert.True(t, money("100").Equal(dash.SalesGrowth),
		"con ayer en 0 y ventas hoy la convención es 100%%, fue %s", dash.SalesGrowth)
}

func TestComputeDashboard_CrecimientoAmbosCero(t *testing.T) {
	snap := snapshotWith(nil, nil)
	snap.History = []entity.DailyStat{{Date: "2026-08-29", Sales: decimal.Zero}}

	dash := analytics.ComputeDashboard(snap)

	assert.True(t, dash.SalesGrowth.IsZero(), "ambos días en cero no es crecimiento")
}

// Solo el último día del historial cuenta como "ayer".
func TestComputeDashboard_CrecimientoUsaUltimoDiaDelHistorial(t *testing.T) {
	snap := snapshotWith([]entity.Transaction{tx("t1", "200")}, nil)
	snap.History = []entity.DailyStat{
		{Date: "2026-08-28", Sales: money("999")},
		{Date: "2026-08-29", Sales: money("100")},
	}

	dash := analytics.ComputeDashboard(snap)

	assert.True(t, money("100").Equal(dash.SalesGrowth),
		"el crecimiento se calcula contra el último día (100), fue %s", dash.SalesGrowth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes y ticket promedio
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDashboard_ClientesDistintosMasVisitas(t *testing.T) {
	snap := snapshotWith([]entity.Transaction{
		tx("t1", "40"),
		tx("t2", "60"),
		tx("t1", "40"), // id repetido cuenta una sola vez
	}, nil)
	snap.BaseVisits = 5

	dash := analytics.ComputeDashboard(snap)

	assert.Equal(t, 7, dash.CustomerCount, "2 ids distintos + 5 visitas manuales")
	assert.Equal(t, 3, dash.TransactionCount, "el conteo de transacciones no deduplica")
}

func TestComputeDashboard_TicketPromedioRedondeado(t *testing.T) {
	snap := snapshotWith([]entity.Transaction{
		tx("t1", "50"),
		tx("t2", "51"),
		tx("t3", "51"),
	}, nil)

	dash := analytics.ComputeDashboard(snap)

	// 152 / 3 = 50.67 → 51
	assert.True(t, money("51").Equal(dash.AvgBilling),
		"152/3 redondea a 51, fue %s", dash.AvgBilling)
}

// ──────────────────────────────────────────────────────────────────────────────
// Top de productos y stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDashboard_TopProductosOrdenEstable(t *testing.T) {
	snap := snapshotWith(nil, nil)
	snap.Products = []entity.Product{
		{ID: "a", Name: "A", SalesCount: 10},
		{ID: "b", Name: "B", SalesCount: 30},
		{ID: "c", Name: "C", SalesCount: 10},
	}

	dash := analytics.ComputeDashboard(snap)

	require.Len(t, dash.TopProducts, 3)
	assert.Equal(t, "b", dash.TopProducts[0].ID)
	assert.Equal(t, "a", dash.TopProducts[1].ID, "en empate conserva el orden del catálogo")
	assert.Equal(t, "c", dash.TopProducts[2].ID)

	// El snapshot original no debe reordenarse.
	assert.Equal(t, "a", snap.Products[0].ID)
}

func TestComputeDashboard_StockBajoUmbralExcluyente(t *testing.T) {
	snap := snapshotWith(nil, nil)
	snap.Products = []entity.Product{
		{ID: "a", Stock: 14},
		{ID: "b", Stock: 15},
		{ID: "c", Stock: -2}, // sobreventa pendiente de conteo
	}

	dash := analytics.ComputeDashboard(snap)

	require.Len(t, dash.LowStockProducts, 2)
	assert.Equal(t, "a", dash.LowStockProducts[0].ID, "14 está bajo el umbral")
	assert.Equal(t, "c", dash.LowStockProducts[1].ID, "stock negativo también es stock bajo")
}
