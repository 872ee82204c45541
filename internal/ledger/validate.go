package ledger

import (
	"fmt"
	"math"

	"github.com/dompet-dev/dompet/internal/model"
)

// ValidationError describes one invalid seed row.
type ValidationError struct {
	Row         int // 1-based position in the seed
	ID          string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d [%s]: %s", e.Row, e.ID, e.Description)
}

// Validate checks a seed against the rules Append enforces, plus ID
// uniqueness and a non-zero date. Running per-type totals must stay within
// int64.
func Validate(txns []model.Transaction) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]int, len(txns))
	totals := make(map[model.Type]int64, 2)

	for i, txn := range txns {
		row := i + 1
		add := func(format string, args ...any) {
			errs = append(errs, ValidationError{Row: row, ID: txn.ID, Description: fmt.Sprintf(format, args...)})
		}

		if txn.ID == "" {
			add("missing id")
		} else if prev, dup := seen[txn.ID]; dup {
			add("duplicate id (first used on row %d)", prev)
		} else {
			seen[txn.ID] = row
		}

		amountOK := false
		switch {
		case txn.Amount <= 0:
			add("amount %d is not positive", txn.Amount)
		case txn.Amount > MaxAmount:
			add("amount %d exceeds %d", txn.Amount, MaxAmount)
		default:
			amountOK = true
		}
		if !txn.Category.Valid() {
			add("unknown category %q", txn.Category)
		}
		if !txn.Type.Valid() {
			add("unknown type %q", txn.Type)
		} else if amountOK {
			if totals[txn.Type] > math.MaxInt64-txn.Amount {
				add("%s total exceeds the largest supported amount", txn.Type)
			} else {
				totals[txn.Type] += txn.Amount
			}
		}
		if txn.Date.IsZero() {
			add("missing date")
		}
	}
	return errs
}
