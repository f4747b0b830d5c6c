package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amethystakira/KiranaDash/internal/domain"
	"github.com/amethystakira/KiranaDash/internal/domain/entity"
	"github.com/amethystakira/KiranaDash/internal/infrastructure/memory"
)

// El snapshot es una copia: mutarlo no debe tocar el estado vivo del store.
func TestSnapshot_NoCompartememoriaConElEstado(t *testing.T) {
	store := memory.NewSeeded()
	ctx := context.Background()

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, snap.Products)

	snap.Products[0].Stock = -999

	fresh, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, -999, fresh.Products[0].Stock,
		"mutar un snapshot no debe afectar al store")
}

func TestDeleteProduct_Inexistente(t *testing.T) {
	store := memory.NewLedgerStore()

	err := store.DeleteProduct(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppendSale_AjustaStockYSalesCountPorLinea(t *testing.T) {
	store := memory.NewLedgerStore()
	ctx := context.Background()
	require.NoError(t, store.PrependProduct(ctx, entity.Product{ID: "p1", Name: "Maggi", Stock: 10}))

	err := store.AppendSale(ctx, entity.Transaction{
		ID:          "t1",
		TotalAmount: decimal.NewFromInt(42),
		Items: []entity.TransactionItem{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p1", Quantity: 1},
		},
	})
	require.NoError(t, err)

	snap, _ := store.Snapshot(ctx)
	assert.Equal(t, 6, snap.Products[0].Stock, "dos líneas del mismo producto descuentan ambas")
	assert.Equal(t, 4, snap.Products[0].SalesCount)
}

// ApplyRestore es parcial: los campos nil del parche no tocan nada; un slice
// vacío no-nil sí reemplaza.
func TestApplyRestore_ParcheParcial(t *testing.T) {
	store := memory.NewSeeded()
	ctx := context.Background()
	require.NoError(t, store.PrependExpense(ctx, entity.Expense{ID: "e1", Title: "luz", Category: entity.ExpenseUtility}))
	require.NoError(t, store.SetBaseVisits(ctx, 9))

	err := store.ApplyRestore(ctx, entity.RestorePatch{
		Products: []entity.Product{}, // presente y vacío: reemplaza
		// Expenses y BaseVisits ausentes: se conservan
	})
	require.NoError(t, err)

	snap, _ := store.Snapshot(ctx)
	assert.Empty(t, snap.Products, "products vacío no-nil debe vaciar el catálogo")
	assert.Len(t, snap.TodayExpenses, 1, "expenses ausente del parche se conserva")
	assert.Equal(t, 9, snap.BaseVisits)
}

// Las colecciones del snapshot nunca son nil: un store recién creado y uno
// recién reiniciado deben serializar [] y no null.
func TestSnapshot_ColeccionesNuncaNil(t *testing.T) {
	store := memory.NewLedgerStore()
	ctx := context.Background()

	assertNotNil := func(snap *entity.LedgerSnapshot, momento string) {
		t.Helper()
		assert.NotNil(t, snap.Products, "%s: products debe ser [], no null", momento)
		assert.NotNil(t, snap.History, "%s: history debe ser [], no null", momento)
		assert.NotNil(t, snap.TodayTransactions, "%s: transactions debe ser [], no null", momento)
		assert.NotNil(t, snap.TodayExpenses, "%s: expenses debe ser [], no null", momento)
	}

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assertNotNil(snap, "store nuevo")

	require.NoError(t, store.PrependExpense(ctx, entity.Expense{ID: "e1", Title: "té"}))
	require.NoError(t, store.AppendSale(ctx, entity.Transaction{ID: "t1"}))
	require.NoError(t, store.ClearDaily(ctx))
	require.NoError(t, store.ClearHistory(ctx))

	snap, err = store.Snapshot(ctx)
	require.NoError(t, err)
	assertNotNil(snap, "tras reinicio")
	assert.Empty(t, snap.TodayTransactions)
	assert.Empty(t, snap.TodayExpenses)
	assert.Empty(t, snap.History)
}

func TestClearDaily_NoTocaHistorialNiCatalogo(t *testing.T) {
	store := memory.NewSeeded()
	ctx := context.Background()
	visits := 2
	history := []entity.DailyStat{{Date: "2026-08-29", Sales: decimal.NewFromInt(100)}}
	require.NoError(t, store.ApplyRestore(ctx, entity.RestorePatch{History: history, BaseVisits: &visits}))

	require.NoError(t, store.ClearDaily(ctx))

	snap, _ := store.Snapshot(ctx)
	assert.Zero(t, snap.BaseVisits)
	assert.Len(t, snap.History, 1, "el historial sobrevive al reinicio diario")
	assert.NotEmpty(t, snap.Products)
}
