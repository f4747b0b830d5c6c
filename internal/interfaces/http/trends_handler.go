package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/amethystakira/KiranaDash/internal/application/analytics"
)

// TrendsHandler maneja los endpoints de tendencias del negocio.
type TrendsHandler struct {
	uc *analytics.UseCase
}

// NewTrendsHandler construye el handler.
func NewTrendsHandler(uc *analytics.UseCase) *TrendsHandler {
	return &TrendsHandler{uc: uc}
}

// GetTrends devuelve la serie diaria, el desglose horario y la participación
// por categoría.
// GET /api/trends
func (h *TrendsHandler) GetTrends(c *fiber.Ctx) error {
	trends, err := h.uc.GetTrends(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(trends)
}

// GetTrendsReport genera el reporte de tendencias en PDF y lo devuelve como
// descarga.
// GET /api/trends/report
func (h *TrendsHandler) GetTrendsReport(c *fiber.Ctx) error {
	report, err := h.uc.GetTrendsReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "trends_report.pdf"))
	return c.Send(report)
}
