package ledger

import (
	"time"

	"github.com/dompet-dev/dompet/internal/model"
)

// DefaultSeed returns the sample ledger a new session starts with, head first.
func DefaultSeed(loc *time.Location) []model.Transaction {
	if loc == nil {
		loc = time.Local
	}
	day := func(d int) time.Time {
		return time.Date(2025, time.November, d, 0, 0, 0, 0, loc)
	}
	return []model.Transaction{
		{ID: "1", Name: "Salary", Amount: 2500000, Category: model.CategorySalary, Type: model.TypeIncome, Date: day(18)},
		{ID: "2", Name: "Gojek Ride", Amount: 18000, Category: model.CategoryTransport, Type: model.TypeExpense, Date: day(19)},
		{ID: "3", Name: "Alfamart", Amount: 52000, Category: model.CategoryShopping, Type: model.TypeExpense, Date: day(19)},
		{ID: "4", Name: "Warteg Sederhana", Amount: 25000, Category: model.CategoryFood, Type: model.TypeExpense, Date: day(20)},
		{ID: "5", Name: "PLN Token", Amount: 100000, Category: model.CategoryBill, Type: model.TypeExpense, Date: day(20)},
	}
}
