package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/amethystakira/KiranaDash/internal/application/backup"
)

// BackupHandler maneja la exportación e importación de respaldos.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export serializa el estado completo y lo devuelve como descarga JSON.
// GET /api/backup
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	raw, filename, err := h.uc.Export(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(raw)
}

// Import valida el documento recibido en el cuerpo y restaura el estado. Un
// documento inválido se rechaza completo con 422 sin tocar los datos vivos.
// POST /api/backup/restore
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.Import(c.Context(), c.Body()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
