package model

import (
	"fmt"
	"time"
)

// Category classifies a transaction. Only the constants below are valid.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryBill      Category = "bill"
	CategoryShopping  Category = "shopping"
	CategorySalary    Category = "salary"
	CategoryOther     Category = "other"
)

// Categories lists every category in entry-screen order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryBill,
	CategoryShopping,
	CategorySalary,
	CategoryOther,
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryBill, CategoryShopping, CategorySalary, CategoryOther:
		return true
	}
	return false
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Type decides the sign a transaction carries in the balance.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is income or expense.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseType converts a string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

// Transaction is one recorded income or expense. Values are never mutated
// once the ledger holds them.
type Transaction struct {
	ID       string
	Name     string
	Amount   int64 // whole rupiah, always > 0
	Category Category
	Type     Type
	Date     time.Time
}

// Signed returns the amount with the sign its type applies to the balance.
func (t Transaction) Signed() int64 {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return -t.Amount
}

// Input holds the caller-supplied fields of a new transaction.
type Input struct {
	Name     string
	Amount   int64
	Category Category
	Type     Type
}

// Filter selects transactions by type. FilterAll matches everything.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = Filter(TypeIncome)
	FilterExpense Filter = Filter(TypeExpense)
)

// ParseFilter converts a string into a Filter. An empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterIncome, FilterExpense:
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Match reports whether txn passes the filter.
func (f Filter) Match(txn Transaction) bool {
	if f == FilterAll {
		return true
	}
	return Type(f) == txn.Type
}
