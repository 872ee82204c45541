package keypad

import (
	"errors"
	"fmt"

	"github.com/dompet-dev/dompet/internal/catalog"
	"github.com/dompet-dev/dompet/internal/model"
)

// ErrNothingToConfirm is returned by Confirm while the amount is zero.
var ErrNothingToConfirm = errors.New("amount must be greater than zero")

// Appender commits a new transaction. *ledger.Ledger satisfies it.
type Appender interface {
	Append(in model.Input) (model.Transaction, error)
}

// Entry is the state of the add-transaction screen.
type Entry struct {
	Buffer   Buffer
	Category model.Category
	Type     model.Type
}

// NewEntry returns an entry with amount 0, category food and type expense.
func NewEntry() Entry {
	return Entry{Category: model.CategoryFood, Type: model.TypeExpense}
}

// Press applies a keypad key to the amount.
func (e *Entry) Press(key string) error {
	b, err := e.Buffer.Push(key)
	if err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	e.Buffer = b
	return nil
}

// Delete removes the last digit of the amount.
func (e *Entry) Delete() {
	e.Buffer = e.Buffer.Pop()
}

// SelectCategory changes the selected category.
func (e *Entry) SelectCategory(c model.Category) error {
	if !c.Valid() {
		return fmt.Errorf("unknown category %q", c)
	}
	e.Category = c
	return nil
}

// SelectType toggles between income and expense.
func (e *Entry) SelectType(t model.Type) error {
	if !t.Valid() {
		return fmt.Errorf("unknown transaction type %q", t)
	}
	e.Type = t
	return nil
}

// CanConfirm reports whether Confirm would append.
func (e *Entry) CanConfirm() bool {
	return e.Buffer.CanConfirm()
}

// Input derives the ledger input. The name is the category's label.
func (e *Entry) Input() model.Input {
	return model.Input{
		Name:     catalog.Label(e.Category),
		Amount:   e.Buffer.Amount(),
		Category: e.Category,
		Type:     e.Type,
	}
}

// Confirm appends the entry through a. With a zero amount a is not called.
// On success the entry is reset for the next transaction.
func (e *Entry) Confirm(a Appender) (model.Transaction, error) {
	if !e.CanConfirm() {
		return model.Transaction{}, ErrNothingToConfirm
	}
	txn, err := a.Append(e.Input())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("appending transaction: %w", err)
	}
	e.Reset()
	return txn, nil
}

// Reset restores the defaults of NewEntry.
func (e *Entry) Reset() {
	*e = NewEntry()
}
