package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amethystakira/KiranaDash/internal/application/forecast"
)

// ForecastHandler maneja los endpoints del pronóstico de ventas.
type ForecastHandler struct {
	svc *forecast.Service
}

// NewForecastHandler construye el handler.
func NewForecastHandler(svc *forecast.Service) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

// GetState devuelve el estado actual de la máquina de pronósticos sin disparar
// una actualización.
// GET /api/forecast
func (h *ForecastHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.svc.State())
}

// Refresh dispara una actualización completa y espera su resultado. Las
// peticiones concurrentes no se deduplican; la última en terminar queda
// publicada.
// POST /api/forecast/refresh
func (h *ForecastHandler) Refresh(c *fiber.Ctx) error {
	result, err := h.svc.Refresh(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
