package entity

import "github.com/shopspring/decimal"

// DailyStat es el agregado de un día ya cerrado: un registro por fecha,
// historial append-only. El "hoy" no se almacena: se sintetiza bajo demanda
// a partir de las transacciones vivas.
type DailyStat struct {
	Date         string          `json:"date"` // clave de día calendario, YYYY-MM-DD
	Sales        decimal.Decimal `json:"sales"`
	Transactions int             `json:"transactions"`
	Customers    int             `json:"customers"`
}
