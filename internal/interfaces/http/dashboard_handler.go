package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amethystakira/KiranaDash/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero principal.
type DashboardHandler struct {
	uc *analytics.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard devuelve todas las métricas del día recalculadas en el momento.
// GET /api/dashboard
//
// Respuesta: DashboardDTO (todaysSales, totalExpenses, profit, salesGrowth,
// transactionCount, customerCount, avgBilling, topProducts, lowStockProducts).
// No requiere parámetros.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	dash, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dash)
}
