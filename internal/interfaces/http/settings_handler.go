package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/application/ledger"
)

// SettingsHandler maneja las preferencias de la aplicación.
type SettingsHandler struct {
	uc *ledger.UseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *ledger.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetSettings devuelve las preferencias actuales.
// GET /api/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	snap, err := h.uc.Snapshot(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap.Settings)
}

// PatchSettings aplica una actualización parcial: solo los campos presentes en
// el JSON cambian.
// PATCH /api/settings
func (h *SettingsHandler) PatchSettings(c *fiber.Ctx) error {
	var in dto.SettingsPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSettings(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
