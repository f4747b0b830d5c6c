package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryPointDTO punto de historial que se envía al proveedor de pronósticos
// (máximo los últimos 7 días).
type HistoryPointDTO struct {
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

// StockSnapshotDTO existencias actuales que se envían al proveedor
// (máximo 10 productos).
type StockSnapshotDTO struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// DayPredictionDTO predicción de un día del horizonte de 7 días.
type DayPredictionDTO struct {
	Day             string          `json:"day"` // día corto, ej: "Mon"
	PredictedSales  decimal.Decimal `json:"predictedSales"`
	PredictedProfit decimal.Decimal `json:"predictedProfit"`
	Confidence      int             `json:"confidence"` // 0–100
}

// StockAlertDTO aviso de agotamiento proyectado de un producto.
type StockAlertDTO struct {
	ProductName   string `json:"productName"`
	DaysRemaining int    `json:"daysRemaining"`
	Severity      string `json:"severity"` // "low" | "critical"
}

// ForecastResultDTO resultado completo de un pronóstico: exactamente 7
// predicciones ordenadas más cero o más alertas de stock.
type ForecastResultDTO struct {
	Forecast    []DayPredictionDTO `json:"forecast"`
	StockAlerts []StockAlertDTO    `json:"stockAlerts"`
}

// ForecastStateDTO snapshot de la máquina de estados del pronóstico que
// consume la vista: unstarted → loading → {ready | failed}.
type ForecastStateDTO struct {
	Status    string             `json:"status"`
	Result    *ForecastResultDTO `json:"result,omitempty"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}
