package view

import (
	"fmt"
	"strings"

	"github.com/dompet-dev/dompet/internal/catalog"
	"github.com/dompet-dev/dompet/internal/format"
	"github.com/dompet-dev/dompet/internal/keypad"
	"github.com/dompet-dev/dompet/internal/model"
)

// TypeLabel is the toggle caption for a transaction type.
func TypeLabel(t model.Type) string {
	if t == model.TypeIncome {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

func renderAdd(b *strings.Builder, st State) {
	e := st.Entry

	b.WriteString("Add Transaction\n")
	rule(b)
	b.WriteString(toggle([]string{TypeLabel(model.TypeExpense), TypeLabel(model.TypeIncome)}, TypeLabel(e.Type)))
	b.WriteByte('\n')

	fmt.Fprintf(b, "Nominal\n%s %s\n", format.CurrencyPrefix, format.Number(e.Buffer.Amount()))

	b.WriteString("Kategori\n")
	for _, entry := range catalog.Default().All() {
		marker := " "
		if entry.Category == e.Category {
			marker = ">"
		}
		fmt.Fprintf(b, " %s %s %s (%s)\n", marker, entry.Icon, entry.Name, entry.Category)
	}

	rule(b)
	fmt.Fprintf(b, "Keypad: %s ⌫\n", strings.Join(keypad.Keys, " "))
	if e.CanConfirm() {
		b.WriteString("[Continue]\n")
	} else {
		b.WriteString("[Continue] (disabled)\n")
	}
}

// toggle renders options with the active one bracketed.
func toggle(options []string, active string) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if o == active {
			parts[i] = "[" + o + "]"
		} else {
			parts[i] = " " + o + " "
		}
	}
	return strings.Join(parts, " ")
}
