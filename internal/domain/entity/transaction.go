package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItem es una línea de venta. Name y Price se copian del producto
// en el momento de la venta: las facturas históricas no cambian aunque el
// producto se renombre o cambie de precio después.
type TransactionItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// Transaction es una venta ya cerrada. Es inmutable: se crea de forma atómica
// desde el carrito y solo desaparece con un reinicio masivo del libro diario.
type Transaction struct {
	ID          string            `json:"id"`
	Timestamp   time.Time         `json:"timestamp"`
	TotalAmount decimal.Decimal   `json:"totalAmount"` // Σ(precio de línea × cantidad)
	Items       []TransactionItem `json:"items"`
}
