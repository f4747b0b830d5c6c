package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/application/ledger"
)

// LedgerHandler maneja los comandos de mutación del libro diario: ventas,
// productos, gastos, visitas y reinicios.
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// ListProducts devuelve el catálogo completo en su orden actual.
// GET /api/products
func (h *LedgerHandler) ListProducts(c *fiber.Ctx) error {
	snap, err := h.uc.Snapshot(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap.Products)
}

// CreateProduct da de alta un producto.
// POST /api/products
func (h *LedgerHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddProduct(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteProduct elimina un producto por id. Las ventas históricas conservan
// sus líneas.
// DELETE /api/products/:id
func (h *LedgerHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterSale cierra el carrito como una transacción.
// POST /api/sales
func (h *LedgerHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpenses devuelve los gastos de hoy, el más reciente primero.
// GET /api/expenses
func (h *LedgerHandler) ListExpenses(c *fiber.Ctx) error {
	snap, err := h.uc.Snapshot(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap.TodayExpenses)
}

// CreateExpense registra un gasto del día.
// POST /api/expenses
func (h *LedgerHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.ExpenseCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddExpense(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetVisits fija el ajuste manual de visitas sin compra.
// POST /api/visits
func (h *LedgerHandler) SetVisits(c *fiber.Ctx) error {
	var in dto.VisitsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetBaseVisits(c.Context(), in.BaseVisits); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset reinicia los datos según el alcance pedido (daily, weekly, monthly).
// POST /api/settings/reset
func (h *LedgerHandler) Reset(c *fiber.Ctx) error {
	var in dto.ResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Reset(c.Context(), in.Scope); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
