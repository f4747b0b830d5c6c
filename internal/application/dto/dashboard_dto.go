package dto

import (
	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/domain/entity"
)

// DashboardDTO respuesta de GET /api/dashboard: las métricas derivadas del día,
// recalculadas en cada lectura a partir del libro diario.
type DashboardDTO struct {
	TodaysSales      decimal.Decimal `json:"todaysSales"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Profit           decimal.Decimal `json:"profit"`      // estimación: ver nota en analytics
	SalesGrowth      decimal.Decimal `json:"salesGrowth"` // % vs ayer
	TransactionCount int             `json:"transactionCount"`
	CustomerCount    int             `json:"customerCount"`
	AvgBilling       decimal.Decimal `json:"avgBilling"`

	TopProducts      []entity.Product `json:"topProducts"`      // desc por salesCount
	LowStockProducts []entity.Product `json:"lowStockProducts"` // stock < umbral
}
