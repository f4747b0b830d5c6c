package dto

import (
	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/domain/entity"
)

// HourlyBucketDTO ventas acumuladas en una franja horaria fija de la jornada.
type HourlyBucketDTO struct {
	Hour  string          `json:"hour"` // etiqueta de la franja, ej: "8AM"
	Sales decimal.Decimal `json:"sales"`
}

// CategoryShareDTO ingreso por categoría de producto y su participación.
type CategoryShareDTO struct {
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage int             `json:"percentage"` // redondeado; la suma ronda 100
}

// TrendsDTO respuesta de GET /api/trends.
type TrendsDTO struct {
	// Series: historial de días cerrados más el "hoy" sintetizado al final.
	Series      []entity.DailyStat `json:"series"`
	Hourly      []HourlyBucketDTO  `json:"hourly"`
	Categories  []CategoryShareDTO `json:"categories"`
	SalesGrowth decimal.Decimal    `json:"salesGrowth"`
}
