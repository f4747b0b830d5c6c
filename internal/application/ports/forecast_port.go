// Package ports define los puertos de salida de la capa de aplicación.
package ports

import (
	"context"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
)

// ForecastProvider puerto hacia el proveedor remoto de pronósticos de ventas.
//
// El caller acota la entrada (historial de hasta 7 días, hasta 10 productos) y
// el adaptador es responsable de validar la forma de la respuesta: exactamente
// 7 predicciones ordenadas y alertas con severidad conocida. Cualquier error
// (red, clave ausente, respuesta malformada) se devuelve tal cual; la política
// de fallback vive en el servicio de pronósticos, no aquí.
type ForecastProvider interface {
	GenerateSalesForecast(ctx context.Context, history []dto.HistoryPointDTO, stock []dto.StockSnapshotDTO) (*dto.ForecastResultDTO, error)
}
