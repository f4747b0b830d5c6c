package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la tienda.
// Los tags JSON coinciden con el formato de los respaldos exportados por la
// app móvil, por eso usan camelCase.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"` // precio unitario de venta, no negativo
	Stock      int             `json:"stock"`
	Category   string          `json:"category"`
	SalesCount int             `json:"salesCount"` // acumulado; solo crece vía ventas
}
