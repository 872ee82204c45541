// Package ledger holds the session's transactions and the aggregates derived
// from them.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/dompet-dev/dompet/internal/id"
	"github.com/dompet-dev/dompet/internal/model"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrAlreadySeeded   = errors.New("ledger already holds transactions")
	ErrAmountTooLarge  = errors.New("amount is too large")
	ErrTotalTooLarge   = errors.New("total would exceed the largest supported amount")
)

// MaxAmount is the largest single amount, fifteen nines. Per-type totals are
// additionally kept within int64.
const MaxAmount int64 = 999_999_999_999_999

// Ledger is an in-memory, append-only sequence of transactions ordered
// most-recent-first.
type Ledger struct {
	mu   sync.RWMutex
	txns []model.Transaction
	ids  map[string]struct{}
	gen  *id.Generator
	now  func() time.Time
}

// Summary is the set of aggregates shown on the history screen.
type Summary struct {
	Balance int64
	Income  int64
	Expense int64
	Count   int
}

// New creates an empty Ledger. A nil clock means time.Now.
func New(now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		ids: make(map[string]struct{}),
		gen: id.NewGenerator(now),
		now: now,
	}
}

// Append validates in, stamps it with a fresh ID and the current time, and
// makes it the head of the ledger. On error the ledger is unchanged.
func (l *Ledger) Append(in model.Input) (model.Transaction, error) {
	if err := validateInput(in); err != nil {
		return model.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.total(in.Type) > math.MaxInt64-in.Amount {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrTotalTooLarge, in.Type)
	}

	txnID := l.gen.Next()
	for l.has(txnID) {
		txnID = l.gen.Next()
	}

	txn := model.Transaction{
		ID:       txnID,
		Name:     in.Name,
		Amount:   in.Amount,
		Category: in.Category,
		Type:     in.Type,
		Date:     l.now(),
	}

	txns := make([]model.Transaction, 0, len(l.txns)+1)
	txns = append(txns, txn)
	l.txns = append(txns, l.txns...)
	l.ids[txn.ID] = struct{}{}
	return txn, nil
}

// Seed loads an initial set of transactions into an empty ledger. The first
// element becomes the head. Every row is validated and nothing is loaded if
// any row fails.
func (l *Ledger) Seed(txns []model.Transaction) error {
	if verrs := Validate(txns); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.txns) > 0 {
		return ErrAlreadySeeded
	}

	l.txns = make([]model.Transaction, len(txns))
	copy(l.txns, txns)
	for _, txn := range txns {
		l.ids[txn.ID] = struct{}{}
		l.gen.Observe(txn.ID)
	}
	return nil
}

// Len returns the number of transactions held.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.txns)
}

// All returns a copy of every transaction, most recent first.
func (l *Ledger) All() []model.Transaction {
	return l.FilterByType(model.FilterAll)
}

// Balance returns income minus expense over all transactions.
func (l *Ledger) Balance() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var balance int64
	for _, txn := range l.txns {
		balance += txn.Signed()
	}
	return balance
}

// Recent returns up to n transactions, most recent first.
func (l *Ledger) Recent(n int) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 {
		return []model.Transaction{}
	}
	if n > len(l.txns) {
		n = len(l.txns)
	}
	out := make([]model.Transaction, n)
	copy(out, l.txns[:n])
	return out
}

// TotalByType sums the amounts of all transactions of type t.
func (l *Ledger) TotalByType(t model.Type) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.total(t)
}

func (l *Ledger) total(t model.Type) int64 {
	var total int64
	for _, txn := range l.txns {
		if txn.Type == t {
			total += txn.Amount
		}
	}
	return total
}

// FilterByType returns the transactions matching f in ledger order.
func (l *Ledger) FilterByType(f model.Filter) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Transaction, 0, len(l.txns))
	for _, txn := range l.txns {
		if f.Match(txn) {
			out = append(out, txn)
		}
	}
	return out
}

// Summary computes balance, per-type totals and count in one pass.
func (l *Ledger) Summary() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Summary{Count: len(l.txns)}
	for _, txn := range l.txns {
		switch txn.Type {
		case model.TypeIncome:
			s.Income += txn.Amount
		case model.TypeExpense:
			s.Expense += txn.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

func (l *Ledger) has(txnID string) bool {
	_, ok := l.ids[txnID]
	return ok
}

func validateInput(in model.Input) error {
	if in.Amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, in.Amount)
	}
	if in.Amount > MaxAmount {
		return fmt.Errorf("%w: got %d", ErrAmountTooLarge, in.Amount)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}
	return nil
}
