package view

import (
	"fmt"
	"strings"

	"github.com/dompet-dev/dompet/internal/format"
	"github.com/dompet-dev/dompet/internal/model"
)

// FilterLabel is the tab caption for a list filter.
func FilterLabel(f model.Filter) string {
	switch f {
	case model.FilterIncome:
		return "Pemasukan"
	case model.FilterExpense:
		return "Pengeluaran"
	}
	return "Semua"
}

func renderList(b *strings.Builder, st State) {
	filter := st.Filter
	if filter == "" {
		filter = model.FilterAll
	}
	sum := st.Ledger.Summary()

	b.WriteString("Semua Transaksi\nRiwayat transaksi lengkap Anda\n")
	rule(b)
	fmt.Fprintf(b, "Pemasukan    %s\n", format.Currency(sum.Income))
	fmt.Fprintf(b, "Pengeluaran  %s\n", format.Currency(sum.Expense))
	rule(b)

	tabs := []string{FilterLabel(model.FilterAll), FilterLabel(model.FilterIncome), FilterLabel(model.FilterExpense)}
	b.WriteString(toggle(tabs, FilterLabel(filter)))
	b.WriteByte('\n')

	txns := st.Ledger.FilterByType(filter)
	if len(txns) == 0 {
		b.WriteString("Tidak ada transaksi\n")
		return
	}
	writeRows(b, txns, func(txn model.Transaction) string {
		return format.FullDate(txn.Date.In(st.Now.Location()))
	})
}
