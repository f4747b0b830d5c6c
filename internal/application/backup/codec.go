// Package backup implementa el códec del archivo de respaldo: exportación del
// estado completo y validación + decodificación de documentos importados.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/domain"
	"github.com/amethystakira/KiranaDash/internal/domain/entity"
)

// documentVersion versión actual del formato de archivo. Un documento con otra
// versión se rechaza completo; no hay migraciones.
const documentVersion = 1

// FileName nombre sugerido para el archivo exportado en la fecha dada.
func FileName(date time.Time) string {
	return fmt.Sprintf("kiranadash_backup_%s.json", date.Format("2006-01-02"))
}

// Serialize arma el documento versionado a partir del snapshot y lo codifica
// con sangría, pensado para que el archivo sea inspeccionable a mano.
func Serialize(snap *entity.LedgerSnapshot, exportedAt time.Time) ([]byte, error) {
	baseVisits := snap.BaseVisits
	settings := snap.Settings

	doc := dto.BackupDocumentDTO{
		Version:      documentVersion,
		Timestamp:    exportedAt.UTC().Format(time.RFC3339),
		Products:     snap.Products,
		History:      snap.History,
		Transactions: encodeTransactions(snap.TodayTransactions),
		Expenses:     encodeExpenses(snap.TodayExpenses),
		BaseVisits:   &baseVisits,
		Settings:     &settings,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: serializar documento: %w", err)
	}
	return out, nil
}

// Deserialize valida el documento y lo convierte en un parche de restauración.
// La validación es todo-o-nada: cualquier defecto (versión desconocida,
// products o settings ausentes, timestamp ilegible, categoría de gasto fuera
// de la enumeración) rechaza el documento completo sin tocar el estado vivo.
//
// Dentro de un documento válido la restauración sí es parcial: las colecciones
// ausentes (nil) no se tocan; una colección presente pero vacía sí reemplaza.
func Deserialize(raw []byte) (*entity.RestorePatch, error) {
	var doc dto.BackupDocumentDTO
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("backup: JSON ilegible: %w", domain.ErrInvalidBackup)
	}

	if doc.Version != documentVersion {
		return nil, fmt.Errorf("backup: versión %d no soportada: %w", doc.Version, domain.ErrInvalidBackup)
	}
	if doc.Products == nil {
		return nil, fmt.Errorf("backup: falta products: %w", domain.ErrInvalidBackup)
	}
	if doc.Settings == nil {
		return nil, fmt.Errorf("backup: falta settings: %w", domain.ErrInvalidBackup)
	}

	patch := &entity.RestorePatch{
		Products:   doc.Products,
		History:    doc.History,
		BaseVisits: doc.BaseVisits,
		Settings:   doc.Settings,
	}

	if doc.Transactions != nil {
		txs, err := decodeTransactions(doc.Transactions)
		if err != nil {
			return nil, err
		}
		patch.Transactions = txs
	}
	if doc.Expenses != nil {
		exps, err := decodeExpenses(doc.Expenses)
		if err != nil {
			return nil, err
		}
		patch.Expenses = exps
	}
	return patch, nil
}

func encodeTransactions(txs []entity.Transaction) []dto.BackupTransactionDTO {
	out := make([]dto.BackupTransactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.BackupTransactionDTO{
			ID:          tx.ID,
			Timestamp:   tx.Timestamp.UTC().Format(time.RFC3339),
			TotalAmount: tx.TotalAmount,
			Items:       tx.Items,
		})
	}
	return out
}

func encodeExpenses(exps []entity.Expense) []dto.BackupExpenseDTO {
	out := make([]dto.BackupExpenseDTO, 0, len(exps))
	for _, e := range exps {
		out = append(out, dto.BackupExpenseDTO{
			ID:        e.ID,
			Title:     e.Title,
			Amount:    e.Amount,
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
			Category:  string(e.Category),
		})
	}
	return out
}

func decodeTransactions(in []dto.BackupTransactionDTO) ([]entity.Transaction, error) {
	out := make([]entity.Transaction, 0, len(in))
	for _, tx := range in {
		ts, err := time.Parse(time.RFC3339, tx.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("backup: timestamp de transacción %q ilegible: %w", tx.Timestamp, domain.ErrInvalidBackup)
		}
		items := tx.Items
		if items == nil {
			items = []entity.TransactionItem{}
		}
		out = append(out, entity.Transaction{
			ID:          tx.ID,
			Timestamp:   ts,
			TotalAmount: tx.TotalAmount,
			Items:       items,
		})
	}
	return out, nil
}

func decodeExpenses(in []dto.BackupExpenseDTO) ([]entity.Expense, error) {
	out := make([]entity.Expense, 0, len(in))
	for _, e := range in {
		ts, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("backup: timestamp de gasto %q ilegible: %w", e.Timestamp, domain.ErrInvalidBackup)
		}
		category := entity.ExpenseCategory(e.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("backup: categoría de gasto %q desconocida: %w", e.Category, domain.ErrInvalidBackup)
		}
		out = append(out, entity.Expense{
			ID:        e.ID,
			Title:     e.Title,
			Amount:    e.Amount,
			Timestamp: ts,
			Category:  category,
		})
	}
	return out, nil
}
