package dto

import (
	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/domain/entity"
)

// BackupTransactionDTO transacción tal como viaja en el archivo de respaldo:
// el timestamp es un string ISO-8601 y se reconstruye a fecha al restaurar.
type BackupTransactionDTO struct {
	ID          string                   `json:"id"`
	Timestamp   string                   `json:"timestamp"`
	TotalAmount decimal.Decimal          `json:"totalAmount"`
	Items       []entity.TransactionItem `json:"items"`
}

// BackupExpenseDTO gasto en formato de archivo (timestamp ISO-8601).
type BackupExpenseDTO struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp string          `json:"timestamp"`
	Category  string          `json:"category"`
}

// BackupDocumentDTO documento versionado de respaldo completo.
//
// En la importación solo products y settings son obligatorios; el resto de
// colecciones son opcionales y se aplican de forma individual (nil = ausente).
type BackupDocumentDTO struct {
	Version      int                    `json:"version"`
	Timestamp    string                 `json:"timestamp"`
	Products     []entity.Product       `json:"products"`
	History      []entity.DailyStat     `json:"history"`
	Transactions []BackupTransactionDTO `json:"transactions"`
	Expenses     []BackupExpenseDTO     `json:"expenses"`
	BaseVisits   *int                   `json:"baseVisits,omitempty"`
	Settings     *entity.AppSettings    `json:"settings,omitempty"`
}
