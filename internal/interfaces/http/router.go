package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amethystakira/KiranaDash/internal/application/analytics"
	"github.com/amethystakira/KiranaDash/internal/application/backup"
	"github.com/amethystakira/KiranaDash/internal/application/forecast"
	"github.com/amethystakira/KiranaDash/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC    *ledger.UseCase
	AnalyticsUC *analytics.UseCase
	ForecastSvc *forecast.Service
	BackupUC    *backup.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Lecturas derivadas
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	api.Get("/dashboard", dashboardHandler.GetDashboard)

	trendsHandler := NewTrendsHandler(deps.AnalyticsUC)
	api.Get("/trends", trendsHandler.GetTrends)
	api.Get("/trends/report", trendsHandler.GetTrendsReport)

	// Pronóstico
	forecastHandler := NewForecastHandler(deps.ForecastSvc)
	api.Get("/forecast", forecastHandler.GetState)
	api.Post("/forecast/refresh", forecastHandler.Refresh)

	// Comandos del libro diario
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	products := api.Group("/products")
	products.Get("/", ledgerHandler.ListProducts)
	products.Post("/", ledgerHandler.CreateProduct)
	products.Delete("/:id", ledgerHandler.DeleteProduct)

	api.Post("/sales", ledgerHandler.RegisterSale)
	api.Get("/expenses", ledgerHandler.ListExpenses)
	api.Post("/expenses", ledgerHandler.CreateExpense)
	api.Post("/visits", ledgerHandler.SetVisits)

	// Preferencias
	settingsHandler := NewSettingsHandler(deps.LedgerUC)
	api.Get("/settings", settingsHandler.GetSettings)
	api.Patch("/settings", settingsHandler.PatchSettings)
	api.Post("/settings/reset", ledgerHandler.Reset)

	// Respaldos
	backupHandler := NewBackupHandler(deps.BackupUC)
	api.Get("/backup", backupHandler.Export)
	api.Post("/backup/restore", backupHandler.Import)
}
