// Package format renders amounts and dates the way the id-ID locale shows
// them.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dompet-dev/dompet/internal/model"
)

// CurrencyPrefix is the symbol written before every amount.
const CurrencyPrefix = "Rp"

var locale = language.Indonesian

// Number renders n with id-ID thousands grouping: 2305000 -> "2.305.000".
func Number(n int64) string {
	if n < 0 {
		return "-" + grouped(abs(n))
	}
	return grouped(abs(n))
}

// Currency renders an amount with the rupiah prefix and no fraction digits:
// 2305000 -> "Rp 2.305.000", -195000 -> "-Rp 195.000".
func Currency(amount int64) string {
	if amount < 0 {
		return "-" + CurrencyPrefix + " " + grouped(abs(amount))
	}
	return CurrencyPrefix + " " + grouped(abs(amount))
}

// Signed renders a transaction amount with the sign its type carries:
// "+Rp 2.500.000" for income, "-Rp 18.000" for expense.
func Signed(txn model.Transaction) string {
	if txn.Type == model.TypeIncome {
		return "+" + Currency(txn.Amount)
	}
	return "-" + Currency(txn.Amount)
}

func grouped(n uint64) string {
	return message.NewPrinter(locale).Sprintf("%d", n)
}

// abs handles math.MinInt64, whose magnitude does not fit in int64.
func abs(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
