package dto

import "github.com/shopspring/decimal"

// SaleLineRequest una línea del carrito: producto y cantidad.
type SaleLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// SaleRequest carrito completo para registrar una venta.
type SaleRequest struct {
	Items []SaleLineRequest `json:"items"`
}

// ProductCreateRequest alta de producto desde el formulario.
type ProductCreateRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Category string          `json:"category"`
}

// ExpenseCreateRequest alta de gasto desde el formulario.
type ExpenseCreateRequest struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

// ResetRequest alcance del reinicio de datos: daily, weekly o monthly.
type ResetRequest struct {
	Scope string `json:"scope"`
}

// VisitsRequest ajuste manual del contador de visitas sin compra.
type VisitsRequest struct {
	BaseVisits int `json:"baseVisits"`
}

// SettingsPatchRequest actualización parcial de preferencias: solo los campos
// presentes en el JSON se aplican.
type SettingsPatchRequest struct {
	Currency    *string `json:"currency,omitempty"`
	Language    *string `json:"language,omitempty"`
	DarkMode    *bool   `json:"darkMode,omitempty"`
	LowDataMode *bool   `json:"lowDataMode,omitempty"`
	OfflineMode *bool   `json:"offlineMode,omitempty"`
}
