package repository

import (
	"context"

	"github.com/amethystakira/KiranaDash/internal/domain/entity"
)

// LedgerRepository define el puerto del libro diario de la sesión (DIP).
//
// El libro (productos, transacciones de hoy, gastos de hoy, historial) es
// propiedad exclusiva del estado de sesión; las capas de lectura reciben
// siempre un snapshot y nunca referencias al estado vivo. Cada método de
// mutación es atómico respecto a los demás.
type LedgerRepository interface {
	// Snapshot devuelve una copia completa del estado actual.
	Snapshot(ctx context.Context) (*entity.LedgerSnapshot, error)

	// GetProducts devuelve los productos indicados, indexados por id.
	// Los ids que no resuelven simplemente no aparecen en el mapa.
	GetProducts(ctx context.Context, ids []string) (map[string]entity.Product, error)

	// PrependProduct inserta un producto al inicio del catálogo.
	PrependProduct(ctx context.Context, p entity.Product) error

	// DeleteProduct elimina por id; ErrNotFound si no existe.
	DeleteProduct(ctx context.Context, id string) error

	// AppendSale registra la venta de forma atómica: antepone la transacción
	// a la lista de hoy y, por cada línea, descuenta stock e incrementa
	// salesCount del producto referenciado.
	AppendSale(ctx context.Context, tx entity.Transaction) error

	// PrependExpense inserta un gasto al inicio de la lista de hoy.
	PrependExpense(ctx context.Context, e entity.Expense) error

	// SetBaseVisits fija el ajuste manual de visitas sin compra.
	SetBaseVisits(ctx context.Context, n int) error

	// ClearDaily vacía transacciones y gastos de hoy y pone baseVisits en 0.
	// El historial de días pasados no se toca.
	ClearDaily(ctx context.Context) error

	// ClearHistory vacía el historial de días pasados.
	ClearHistory(ctx context.Context) error

	// SaveSettings reemplaza la configuración de la sesión.
	SaveSettings(ctx context.Context, s entity.AppSettings) error

	// ApplyRestore aplica un parche de restauración campo a campo:
	// solo los campos presentes (no nil) reemplazan el estado vivo.
	ApplyRestore(ctx context.Context, patch entity.RestorePatch) error
}
