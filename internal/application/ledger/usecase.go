// Package ledger contiene los comandos de mutación del libro diario: las
// únicas puertas de entrada para modificar el estado de la sesión.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/domain"
	"github.com/amethystakira/KiranaDash/internal/domain/entity"
	"github.com/amethystakira/KiranaDash/internal/domain/repository"
)

// Alcances de reinicio aceptados por Reset.
const (
	ScopeDaily   = "daily"
	ScopeWeekly  = "weekly"
	ScopeMonthly = "monthly"
)

// UseCase agrupa los comandos sobre el libro diario.
type UseCase struct {
	repo repository.LedgerRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.LedgerRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// RegisterSale cierra el carrito como una transacción atómica: captura nombre
// y precio actuales de cada producto en la línea (desnormalización deliberada:
// la factura histórica no cambia si el producto se edita después), calcula el
// total y delega en el repositorio la inserción más el ajuste de stock y
// salesCount.
//
// La venta NO se rechaza por stock insuficiente: el stock puede quedar
// negativo hasta el siguiente conteo físico.
func (uc *UseCase) RegisterSale(ctx context.Context, req dto.SaleRequest) (*entity.Transaction, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("venta sin líneas: %w", domain.ErrInvalidInput)
	}

	ids := make([]string, 0, len(req.Items))
	for _, line := range req.Items {
		if line.ProductID == "" || line.Quantity < 1 {
			return nil, fmt.Errorf("línea de venta inválida: %w", domain.ErrInvalidInput)
		}
		ids = append(ids, line.ProductID)
	}

	products, err := uc.repo.GetProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("ledger: consultar productos: %w", err)
	}

	items := make([]entity.TransactionItem, 0, len(req.Items))
	total := decimal.Zero
	for _, line := range req.Items {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("producto %s: %w", line.ProductID, domain.ErrNotFound)
		}
		items = append(items, entity.TransactionItem{
			ProductID: p.ID,
			Quantity:  line.Quantity,
			Name:      p.Name,
			Price:     p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tx := entity.Transaction{
		ID:          uuid.NewString(),
		Timestamp:   uc.now(),
		TotalAmount: total,
		Items:       items,
	}
	if err := uc.repo.AppendSale(ctx, tx); err != nil {
		return nil, fmt.Errorf("ledger: registrar venta: %w", err)
	}
	return &tx, nil
}

// AddProduct da de alta un producto con salesCount en 0.
func (uc *UseCase) AddProduct(ctx context.Context, req dto.ProductCreateRequest) (*entity.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price.IsNegative() || req.Stock < 0 {
		return nil, fmt.Errorf("alta de producto: %w", domain.ErrInvalidInput)
	}

	p := entity.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: strings.TrimSpace(req.Category),
	}
	if err := uc.repo.PrependProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("ledger: alta de producto: %w", err)
	}
	return &p, nil
}

// DeleteProduct elimina por id. Las transacciones históricas conservan sus
// líneas desnormalizadas; en los desgloses por categoría el producto borrado
// pasa a atribuirse a "Other".
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id vacío: %w", domain.ErrInvalidInput)
	}
	return uc.repo.DeleteProduct(ctx, id)
}

// AddExpense registra un gasto del día. La categoría debe pertenecer a la
// enumeración cerrada; se valida aquí, en la frontera.
func (uc *UseCase) AddExpense(ctx context.Context, req dto.ExpenseCreateRequest) (*entity.Expense, error) {
	title := strings.TrimSpace(req.Title)
	category := entity.ExpenseCategory(req.Category)
	if title == "" || req.Amount.IsNegative() || !category.Valid() {
		return nil, fmt.Errorf("alta de gasto: %w", domain.ErrInvalidInput)
	}

	e := entity.Expense{
		ID:        uuid.NewString(),
		Title:     title,
		Amount:    req.Amount,
		Timestamp: uc.now(),
		Category:  category,
	}
	if err := uc.repo.PrependExpense(ctx, e); err != nil {
		return nil, fmt.Errorf("ledger: alta de gasto: %w", err)
	}
	return &e, nil
}

// SetBaseVisits fija el ajuste manual de visitas sin compra.
func (uc *UseCase) SetBaseVisits(ctx context.Context, n int) error {
	if n < 0 {
		return fmt.Errorf("visitas negativas: %w", domain.ErrInvalidInput)
	}
	return uc.repo.SetBaseVisits(ctx, n)
}

// Reset limpia el estado según el alcance:
//
//	daily   → transacciones y gastos de hoy, baseVisits a 0; historial intacto.
//	monthly → lo anterior más el historial completo.
//	weekly  → aceptado pero sin efecto. El alcance existe en la superficie
//	          pública desde la primera versión y nunca se implementó; se
//	          conserva el comportamiento a la espera de decisión de producto.
//
// TODO: decidir si weekly se implementa (limpiar últimos 7 días del
// historial) o se retira del conjunto de alcances.
func (uc *UseCase) Reset(ctx context.Context, scope string) error {
	switch scope {
	case ScopeDaily:
		return uc.repo.ClearDaily(ctx)
	case ScopeMonthly:
		if err := uc.repo.ClearHistory(ctx); err != nil {
			return err
		}
		return uc.repo.ClearDaily(ctx)
	case ScopeWeekly:
		return nil
	default:
		return fmt.Errorf("alcance %q: %w", scope, domain.ErrInvalidInput)
	}
}

// UpdateSettings aplica un parche de preferencias campo a campo.
func (uc *UseCase) UpdateSettings(ctx context.Context, req dto.SettingsPatchRequest) (*entity.AppSettings, error) {
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("ledger: leer configuración: %w", err)
	}

	cfg := snap.Settings
	if req.Currency != nil {
		cfg.Currency = *req.Currency
	}
	if req.Language != nil {
		cfg.Language = *req.Language
	}
	if req.DarkMode != nil {
		cfg.DarkMode = *req.DarkMode
	}
	if req.LowDataMode != nil {
		cfg.LowDataMode = *req.LowDataMode
	}
	if req.OfflineMode != nil {
		cfg.OfflineMode = *req.OfflineMode
	}

	if err := uc.repo.SaveSettings(ctx, cfg); err != nil {
		return nil, fmt.Errorf("ledger: guardar configuración: %w", err)
	}
	return &cfg, nil
}

// Restore aplica un parche de restauración ya validado por el códec de
// respaldos. La validación ocurre antes: si el documento es inválido el
// estado vivo no se toca.
func (uc *UseCase) Restore(ctx context.Context, patch entity.RestorePatch) error {
	return uc.repo.ApplyRestore(ctx, patch)
}

// Snapshot expone la lectura completa del estado (respaldos y métricas).
func (uc *UseCase) Snapshot(ctx context.Context) (*entity.LedgerSnapshot, error) {
	return uc.repo.Snapshot(ctx)
}
