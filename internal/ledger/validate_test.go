package ledger

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet-dev/dompet/internal/model"
)

func TestValidate_DefaultSeed(t *testing.T) {
	assert.Empty(t, Validate(DefaultSeed(time.UTC)))
}

func TestValidate_Violations(t *testing.T) {
	good := model.Transaction{ID: "a", Name: "n", Amount: 1, Category: model.CategoryFood, Type: model.TypeExpense, Date: testNow}

	tests := []struct {
		name   string
		mutate func(*model.Transaction)
		want   string
	}{
		{"missing id", func(txn *model.Transaction) { txn.ID = "" }, "missing id"},
		{"zero amount", func(txn *model.Transaction) { txn.Amount = 0 }, "not positive"},
		{"negative amount", func(txn *model.Transaction) { txn.Amount = -5 }, "not positive"},
		{"amount over max", func(txn *model.Transaction) { txn.Amount = MaxAmount + 1 }, "exceeds"},
		{"amount max int64", func(txn *model.Transaction) { txn.Amount = math.MaxInt64 }, "exceeds"},
		{"category", func(txn *model.Transaction) { txn.Category = "rent" }, "unknown category"},
		{"type", func(txn *model.Transaction) { txn.Type = "refund" }, "unknown type"},
		{"date", func(txn *model.Transaction) { txn.Date = time.Time{} }, "missing date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := good
			tt.mutate(&txn)
			errs := Validate([]model.Transaction{txn})
			require.Len(t, errs, 1)
			assert.Equal(t, 1, errs[0].Row)
			assert.Contains(t, errs[0].Error(), tt.want)
		})
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	seed := DefaultSeed(time.UTC)
	seed[3].ID = "2"

	errs := Validate(seed)
	require.Len(t, errs, 1)
	assert.Equal(t, 4, errs[0].Row)
	assert.Equal(t, "row 4 [2]: duplicate id (first used on row 2)", errs[0].Error())
}

// maxIncomes returns n income rows of MaxAmount with ids "1".."n".
func maxIncomes(n int) []model.Transaction {
	txns := make([]model.Transaction, n)
	for i := range txns {
		txns[i] = model.Transaction{
			ID:       strconv.Itoa(i + 1),
			Name:     "Bonus",
			Amount:   MaxAmount,
			Category: model.CategorySalary,
			Type:     model.TypeIncome,
			Date:     testNow,
		}
	}
	return txns
}

func TestValidate_TotalOverflow(t *testing.T) {
	// 9223 rows of MaxAmount still fit in int64; the next one does not.
	seed := maxIncomes(9224)
	require.Empty(t, Validate(seed[:9223]))

	errs := Validate(seed)
	require.Len(t, errs, 1)
	assert.Equal(t, 9224, errs[0].Row)
	assert.Contains(t, errs[0].Error(), "income total exceeds")

	// Expenses keep their own total.
	mixed := append(seed[:9223:9223], model.Transaction{
		ID: "x", Name: "Rent", Amount: MaxAmount, Category: model.CategoryBill, Type: model.TypeExpense, Date: testNow,
	})
	assert.Empty(t, Validate(mixed))
}

func TestSeed_RejectsOverflowingTotals(t *testing.T) {
	l := New(fixedClock)
	err := l.Seed([]model.Transaction{
		{ID: "1", Name: "a", Amount: math.MaxInt64, Category: model.CategorySalary, Type: model.TypeIncome, Date: testNow},
		{ID: "2", Name: "b", Amount: 10, Category: model.CategorySalary, Type: model.TypeIncome, Date: testNow},
	})
	require.Error(t, err)
	assert.Equal(t, 0, l.Len())

	require.NoError(t, l.Seed(maxIncomes(9223)))
	assert.Positive(t, l.Balance())
	assert.Equal(t, 9223*MaxAmount, l.TotalByType(model.TypeIncome))
}
