// Package memory implementa el libro diario de la sesión en memoria.
//
// El almacenamiento durable no es responsabilidad del motor (los respaldos
// JSON cubren la exportación); este store solo garantiza mutaciones atómicas
// dentro de una sesión. Un RWMutex serializa los comandos: el servidor HTTP
// atiende en varias goroutines pero el libro se comporta como un único
// contexto de ejecución.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/domain"
	"github.com/amethystakira/KiranaDash/internal/domain/entity"
	"github.com/amethystakira/KiranaDash/internal/domain/repository"
)

// Verificación en tiempo de compilación del puerto.
var _ repository.LedgerRepository = (*LedgerStore)(nil)

// LedgerStore estado de sesión protegido por mutex.
type LedgerStore struct {
	mu           sync.RWMutex
	products     []entity.Product
	history      []entity.DailyStat
	transactions []entity.Transaction
	expenses     []entity.Expense
	baseVisits   int
	settings     entity.AppSettings
}

// NewLedgerStore crea un libro vacío (tienda recién instalada). Las
// colecciones arrancan vacías no-nil para que siempre serialicen como [] y
// nunca como null.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		products:     []entity.Product{},
		history:      []entity.DailyStat{},
		transactions: []entity.Transaction{},
		expenses:     []entity.Expense{},
		settings:     entity.DefaultSettings(),
	}
}

// NewSeeded crea un libro con el catálogo de demostración de una tienda
// kirana típica, útil para desarrollo y para las pruebas de los handlers.
func NewSeeded() *LedgerStore {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	s := NewLedgerStore()
	s.products = []entity.Product{
		{ID: "p-parle-g", Name: "Parle-G Biscuit", Price: price(10), Stock: 140, Category: "Snacks", SalesCount: 320},
		{ID: "p-tata-salt", Name: "Tata Salt 1kg", Price: price(28), Stock: 45, Category: "Grocery", SalesCount: 180},
		{ID: "p-amul-milk", Name: "Amul Milk 500ml", Price: price(27), Stock: 12, Category: "Dairy", SalesCount: 410},
		{ID: "p-maggi", Name: "Maggi Noodles", Price: price(14), Stock: 80, Category: "Snacks", SalesCount: 290},
		{ID: "p-red-label", Name: "Red Label Tea 250g", Price: price(140), Stock: 9, Category: "Beverages", SalesCount: 95},
		{ID: "p-lux-soap", Name: "Lux Soap", Price: price(34), Stock: 60, Category: "Personal Care", SalesCount: 120},
		{ID: "p-aashirvaad", Name: "Aashirvaad Atta 5kg", Price: price(260), Stock: 20, Category: "Grocery", SalesCount: 45},
	}
	return s
}

func (s *LedgerStore) Snapshot(_ context.Context) (*entity.LedgerSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &entity.LedgerSnapshot{
		Products:          cloneSlice(s.products),
		History:           cloneSlice(s.history),
		TodayTransactions: cloneTransactions(s.transactions),
		TodayExpenses:     cloneSlice(s.expenses),
		BaseVisits:        s.baseVisits,
		Settings:          s.settings,
	}, nil
}

func (s *LedgerStore) GetProducts(_ context.Context, ids []string) (map[string]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[string]entity.Product, len(ids))
	for _, id := range ids {
		for _, p := range s.products {
			if p.ID == id {
				byID[id] = p
				break
			}
		}
	}
	return byID, nil
}

func (s *LedgerStore) PrependProduct(_ context.Context, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]entity.Product{p}, s.products...)
	return nil
}

func (s *LedgerStore) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *LedgerStore) AppendSale(_ context.Context, tx entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append([]entity.Transaction{tx}, s.transactions...)

	// Descontar stock e incrementar salesCount por línea. No hay piso en 0:
	// una sobreventa deja stock negativo hasta el próximo conteo físico.
	for _, item := range tx.Items {
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				s.products[i].Stock -= item.Quantity
				s.products[i].SalesCount += item.Quantity
				break
			}
		}
	}
	return nil
}

func (s *LedgerStore) PrependExpense(_ context.Context, e entity.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = append([]entity.Expense{e}, s.expenses...)
	return nil
}

func (s *LedgerStore) SetBaseVisits(_ context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseVisits = n
	return nil
}

func (s *LedgerStore) ClearDaily(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = []entity.Transaction{}
	s.expenses = []entity.Expense{}
	s.baseVisits = 0
	return nil
}

func (s *LedgerStore) ClearHistory(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = []entity.DailyStat{}
	return nil
}

func (s *LedgerStore) SaveSettings(_ context.Context, cfg entity.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = cfg
	return nil
}

func (s *LedgerStore) ApplyRestore(_ context.Context, patch entity.RestorePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Products != nil {
		s.products = cloneSlice(patch.Products)
	}
	if patch.History != nil {
		s.history = cloneSlice(patch.History)
	}
	if patch.Transactions != nil {
		s.transactions = cloneTransactions(patch.Transactions)
	}
	if patch.Expenses != nil {
		s.expenses = cloneSlice(patch.Expenses)
	}
	if patch.BaseVisits != nil {
		s.baseVisits = *patch.BaseVisits
	}
	if patch.Settings != nil {
		s.settings = *patch.Settings
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// cloneTransactions copia también las líneas para que el snapshot no comparta
// slices internos con el estado vivo.
func cloneTransactions(in []entity.Transaction) []entity.Transaction {
	if in == nil {
		return nil
	}
	out := make([]entity.Transaction, len(in))
	for i, tx := range in {
		cp := tx
		cp.Items = make([]entity.TransactionItem, len(tx.Items))
		copy(cp.Items, tx.Items)
		out[i] = cp
	}
	return out
}
