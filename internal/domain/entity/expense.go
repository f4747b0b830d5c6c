package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory enumeración cerrada de categorías de gasto.
// Se valida en la frontera (formularios y restauración de respaldos).
type ExpenseCategory string

const (
	ExpenseRent    ExpenseCategory = "Rent"
	ExpenseUtility ExpenseCategory = "Utility"
	ExpenseSalary  ExpenseCategory = "Salary"
	ExpenseMisc    ExpenseCategory = "Misc"
)

// Valid indica si la categoría pertenece al conjunto cerrado.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseRent, ExpenseUtility, ExpenseSalary, ExpenseMisc:
		return true
	}
	return false
}

// Expense es un gasto del día. Inmutable una vez registrado; se elimina solo
// con los reinicios diario o mensual.
type Expense struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"` // no negativo
	Timestamp time.Time       `json:"timestamp"`
	Category  ExpenseCategory `json:"category"`
}
