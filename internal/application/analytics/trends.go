package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/domain/entity"
)

// fallbackCategory atribución de ingreso cuando el producto de una línea ya
// no resuelve (por ejemplo, fue eliminado del catálogo).
const fallbackCategory = "Other"

// hourlyBuckets franjas fijas de 2 horas que cubren la jornada de 8:00 a
// 24:00. Una transacción anterior a las 8AM no cae en ninguna franja: es un
// hueco aceptado de la jornada comercial, no un defecto a corregir.
var hourlyBuckets = []struct {
	label      string
	start, end int // [start, end)
}{
	{"8AM", 8, 10},
	{"10AM", 10, 12},
	{"12PM", 12, 14},
	{"2PM", 14, 16},
	{"4PM", 16, 18},
	{"6PM", 18, 20},
	{"8PM", 20, 24},
}

// ComputeTrends calcula los desgloses de tendencias sobre el snapshot:
// serie diaria (historial + hoy sintetizado), ventas por franja horaria y
// participación de ingreso por categoría.
func ComputeTrends(snap *entity.LedgerSnapshot, now time.Time) *dto.TrendsDTO {
	dash := ComputeDashboard(snap)

	series := make([]entity.DailyStat, 0, len(snap.History)+1)
	series = append(series, snap.History...)
	series = append(series, entity.DailyStat{
		Date:         now.Format("2006-01-02"),
		Sales:        dash.TodaysSales,
		Transactions: dash.TransactionCount,
		Customers:    dash.CustomerCount,
	})

	return &dto.TrendsDTO{
		Series:      series,
		Hourly:      hourlyBreakdown(snap.TodayTransactions),
		Categories:  categoryBreakdown(snap.TodayTransactions, snap.Products),
		SalesGrowth: dash.SalesGrowth,
	}
}

// hourlyBreakdown acumula el total de cada transacción en la franja donde cae
// su hora local.
func hourlyBreakdown(transactions []entity.Transaction) []dto.HourlyBucketDTO {
	out := make([]dto.HourlyBucketDTO, len(hourlyBuckets))
	for i, b := range hourlyBuckets {
		out[i] = dto.HourlyBucketDTO{Hour: b.label, Sales: decimal.Zero}
	}

	for _, tx := range transactions {
		h := tx.Timestamp.Hour()
		for i, b := range hourlyBuckets {
			if h >= b.start && h < b.end {
				out[i].Sales = out[i].Sales.Add(tx.TotalAmount)
				break
			}
		}
	}
	return out
}

// categoryBreakdown agrupa el ingreso (precio de línea × cantidad) por la
// categoría del producto referenciado en el momento de la consulta, no por la
// línea desnormalizada: recategorizar un producto reescribe la atribución
// histórica, y un producto eliminado cae en "Other".
//
// Resultado ordenado descendente por ingreso; la participación se calcula
// contra la suma de todas las categorías.
func categoryBreakdown(transactions []entity.Transaction, products []entity.Product) []dto.CategoryShareDTO {
	if len(transactions) == 0 {
		return []dto.CategoryShareDTO{}
	}

	categoryByID := make(map[string]string, len(products))
	for _, p := range products {
		categoryByID[p.ID] = p.Category
	}

	revenue := make(map[string]decimal.Decimal)
	order := make([]string, 0, 8) // orden de primera aparición para empates
	for _, tx := range transactions {
		for _, item := range tx.Items {
			category, ok := categoryByID[item.ProductID]
			if !ok || category == "" {
				category = fallbackCategory
			}
			if _, exists := revenue[category]; !exists {
				order = append(order, category)
			}
			amount := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			revenue[category] = revenue[category].Add(amount)
		}
	}

	total := decimal.Zero
	for _, v := range revenue {
		total = total.Add(v)
	}

	out := make([]dto.CategoryShareDTO, 0, len(order))
	for _, name := range order {
		share := 0
		if total.IsPositive() {
			share = int(roundHalfUp(revenue[name].Div(total).Mul(hundred)).IntPart())
		}
		out = append(out, dto.CategoryShareDTO{
			Name:       name,
			Revenue:    revenue[name],
			Percentage: share,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}
