package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/application/ledger"
	"github.com/amethystakira/KiranaDash/internal/domain"
	"github.com/amethystakira/KiranaDash/internal/infrastructure/memory"
)

func money(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// seedProduct da de alta un producto y devuelve su id.
func seedProduct(t *testing.T, uc *ledger.UseCase, name string, price string, stock int) string {
	t.Helper()
	p, err := uc.AddProduct(context.Background(), dto.ProductCreateRequest{
		Name: name, Price: money(price), Stock: stock, Category: "Grocery",
	})
	require.NoError(t, err)
	return p.ID
}

func newUseCase() (*ledger.UseCase, *memory.LedgerStore) {
	store := memory.NewLedgerStore()
	return ledger.NewUseCase(store), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_EscenarioCompleto(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	id := seedProduct(t, uc, "Tata Salt", "50", 5)

	sale, err := uc.RegisterSale(ctx, dto.SaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: id, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sale.ID, "la venta debe recibir un id generado")
	assert.True(t, money("100").Equal(sale.TotalAmount), "total = 50 × 2, fue %s", sale.TotalAmount)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Tata Salt", sale.Items[0].Name, "la línea captura el nombre al momento de la venta")

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.TodayTransactions, 1)
	assert.Equal(t, sale.ID, snap.TodayTransactions[0].ID)
	assert.Equal(t, 3, snap.Products[0].Stock, "el stock baja de 5 a 3")
	assert.Equal(t, 2, snap.Products[0].SalesCount)
}

// La venta más reciente queda primera.
func TestRegisterSale_OrdenMasRecientePrimero(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	id := seedProduct(t, uc, "Maggi", "14", 100)

	first, err := uc.RegisterSale(ctx, dto.SaleRequest{Items: []dto.SaleLineRequest{{ProductID: id, Quantity: 1}}})
	require.NoError(t, err)
	second, err := uc.RegisterSale(ctx, dto.SaleRequest{Items: []dto.SaleLineRequest{{ProductID: id, Quantity: 1}}})
	require.NoError(t, err)

	snap, _ := store.Snapshot(ctx)
	require.Len(t, snap.TodayTransactions, 2)
	assert.Equal(t, second.ID, snap.TodayTransactions[0].ID)
	assert.Equal(t, first.ID, snap.TodayTransactions[1].ID)
}

// Vender más unidades que el stock disponible no se rechaza: el stock queda
// negativo hasta el siguiente conteo físico.
func TestRegisterSale_SobreventaPermitida(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	id := seedProduct(t, uc, "Amul Milk", "27", 1)

	_, err := uc.RegisterSale(ctx, dto.SaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: id, Quantity: 3}},
	})
	require.NoError(t, err, "la sobreventa no debe rechazarse")

	snap, _ := store.Snapshot(ctx)
	assert.Equal(t, -2, snap.Products[0].Stock)
}

func TestRegisterSale_CarritoVacioInvalido(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RegisterSale(context.Background(), dto.SaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterSale_ProductoInexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RegisterSale(context.Background(), dto.SaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: "no-existe", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterSale_CantidadCeroInvalida(t *testing.T) {
	uc, _ := newUseCase()
	id := seedProduct(t, uc, "Lux Soap", "34", 10)

	_, err := uc.RegisterSale(context.Background(), dto.SaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: id, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Editar el producto después de la venta no reescribe la línea histórica.
func TestRegisterSale_LineaDesnormalizadaInmutable(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	id := seedProduct(t, uc, "Red Label", "140", 10)

	_, err := uc.RegisterSale(ctx, dto.SaleRequest{Items: []dto.SaleLineRequest{{ProductID: id, Quantity: 1}}})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, id))

	snap, _ := store.Snapshot(ctx)
	require.Len(t, snap.TodayTransactions, 1)
	assert.Equal(t, "Red Label", snap.TodayTransactions[0].Items[0].Name,
		"la línea conserva el nombre aunque el producto ya no exista")
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos y visitas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddExpense_CategoriaFueraDeEnumeracion(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.AddExpense(context.Background(), dto.ExpenseCreateRequest{
		Title: "arriendo", Amount: money("1000"), Category: "Alquiler",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo Rent/Utility/Salary/Misc son válidas")
}

func TestAddExpense_Valido(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()

	e, err := uc.AddExpense(ctx, dto.ExpenseCreateRequest{
		Title: "recibo de luz", Amount: money("350"), Category: "Utility",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)

	snap, _ := store.Snapshot(ctx)
	require.Len(t, snap.TodayExpenses, 1)
}

func TestSetBaseVisits_NegativoInvalido(t *testing.T) {
	uc, _ := newUseCase()

	err := uc.SetBaseVisits(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reinicios
// ──────────────────────────────────────────────────────────────────────────────

func seedFullDay(t *testing.T, uc *ledger.UseCase) {
	t.Helper()
	ctx := context.Background()
	id := seedProduct(t, uc, "Parle-G", "10", 100)
	_, err := uc.RegisterSale(ctx, dto.SaleRequest{Items: []dto.SaleLineRequest{{ProductID: id, Quantity: 2}}})
	require.NoError(t, err)
	_, err = uc.AddExpense(ctx, dto.ExpenseCreateRequest{Title: "té", Amount: money("20"), Category: "Misc"})
	require.NoError(t, err)
	require.NoError(t, uc.SetBaseVisits(ctx, 4))
}

func TestReset_DailyConservaCatalogo(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	seedFullDay(t, uc)

	require.NoError(t, uc.Reset(ctx, ledger.ScopeDaily))

	snap, _ := store.Snapshot(ctx)
	assert.Empty(t, snap.TodayTransactions)
	assert.Empty(t, snap.TodayExpenses)
	assert.Zero(t, snap.BaseVisits)
	require.Len(t, snap.Products, 1, "el catálogo sobrevive al reinicio diario")
	assert.Equal(t, 98, snap.Products[0].Stock, "el stock descontado no se repone")
}

func TestReset_MonthlyLimpiaTambienHistorial(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	seedFullDay(t, uc)

	require.NoError(t, uc.Reset(ctx, ledger.ScopeMonthly))

	snap, _ := store.Snapshot(ctx)
	assert.Empty(t, snap.History)
	assert.Empty(t, snap.TodayTransactions)
}

// weekly se acepta sin efecto alguno; ver el comentario en Reset.
func TestReset_WeeklySinEfecto(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	seedFullDay(t, uc)

	require.NoError(t, uc.Reset(ctx, ledger.ScopeWeekly))

	snap, _ := store.Snapshot(ctx)
	assert.Len(t, snap.TodayTransactions, 1, "weekly no debe tocar nada")
	assert.Len(t, snap.TodayExpenses, 1)
	assert.Equal(t, 4, snap.BaseVisits)
}

func TestReset_AlcanceDesconocido(t *testing.T) {
	uc, _ := newUseCase()

	err := uc.Reset(context.Background(), "yearly")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Preferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateSettings_ParcheParcial(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	dark := false
	out, err := uc.UpdateSettings(ctx, dto.SettingsPatchRequest{DarkMode: &dark})
	require.NoError(t, err)

	assert.False(t, out.DarkMode)
	assert.Equal(t, "INR", out.Currency, "los campos ausentes del parche no cambian")
	assert.Equal(t, "English", out.Language)
}
