// Package analytics contiene el agregador de métricas del negocio: funciones
// puras que recalculan las cifras derivadas del día sobre un snapshot del
// libro diario en cada lectura.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/domain/entity"
)

const lowStockThreshold = 15

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.RequireFromString("0.5")

	// grossMarginRate modela el costo de mercadería como el 60% del ingreso:
	// profit = ventas × 0.40 − gastos. Es una estimación documentada, no se
	// deriva del costo real por producto; quien consuma la cifra debe
	// tratarla como aproximación.
	grossMarginRate = decimal.RequireFromString("0.40")
)

// ComputeDashboard calcula todas las métricas del día a partir del snapshot.
// Función pura: no retiene referencias ni muta el snapshot recibido.
func ComputeDashboard(snap *entity.LedgerSnapshot) *dto.DashboardDTO {
	todaysSales := decimal.Zero
	for _, tx := range snap.TodayTransactions {
		todaysSales = todaysSales.Add(tx.TotalAmount)
	}

	totalExpenses := decimal.Zero
	for _, e := range snap.TodayExpenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	profit := roundHalfUp(todaysSales.Mul(grossMarginRate).Sub(totalExpenses))

	txCount := len(snap.TodayTransactions)

	// Visitas: transacciones con id distinto (cada id cuenta una sola vez)
	// más el ajuste manual de visitas sin compra.
	seen := make(map[string]struct{}, txCount)
	for _, tx := range snap.TodayTransactions {
		seen[tx.ID] = struct{}{}
	}
	customerCount := len(seen) + snap.BaseVisits

	avgBilling := decimal.Zero
	if txCount > 0 {
		avgBilling = roundHalfUp(todaysSales.Div(decimal.NewFromInt(int64(txCount))))
	}

	yesterdaySales := decimal.Zero
	if n := len(snap.History); n > 0 {
		yesterdaySales = snap.History[n-1].Sales
	}

	return &dto.DashboardDTO{
		TodaysSales:      todaysSales,
		TotalExpenses:    totalExpenses,
		Profit:           profit,
		SalesGrowth:      salesGrowth(yesterdaySales, todaysSales),
		TransactionCount: txCount,
		CustomerCount:    customerCount,
		AvgBilling:       avgBilling,
		TopProducts:      topProducts(snap.Products),
		LowStockProducts: lowStockProducts(snap.Products),
	}
}

// salesGrowth crecimiento porcentual de hoy contra ayer, con tres ramas
// deliberadas para evitar divisiones por cero:
//
//	ayer > 0            → (hoy − ayer) / ayer × 100
//	ayer = 0 y hoy > 0  → 100 (convención de saturación, no un cociente real)
//	ambos 0             → 0
//
// La rama del 100% debe conservarse tal cual: no es hoy/0.
func salesGrowth(yesterday, today decimal.Decimal) decimal.Decimal {
	switch {
	case yesterday.IsPositive():
		return today.Sub(yesterday).Div(yesterday).Mul(hundred).Round(2)
	case today.IsPositive():
		return hundred
	default:
		return decimal.Zero
	}
}

// topProducts copia ordenada descendente por salesCount. Orden estable:
// los empates conservan el orden relativo del catálogo.
func topProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SalesCount > out[j].SalesCount
	})
	return out
}

func lowStockProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			out = append(out, p)
		}
	}
	return out
}

// roundHalfUp redondeo a entero con mitades hacia arriba: floor(x + 0.5).
// Las mitades negativas también suben (−0.5 → 0), a diferencia de Round de
// decimal, que aleja del cero.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}
