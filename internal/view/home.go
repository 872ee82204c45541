package view

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dompet-dev/dompet/internal/catalog"
	"github.com/dompet-dev/dompet/internal/format"
	"github.com/dompet-dev/dompet/internal/model"
)

func renderHome(b *strings.Builder, st State) {
	balance := format.Currency(st.Ledger.Balance())

	fmt.Fprintf(b, "Total Balance\n%s\n", balance)
	rule(b)
	fmt.Fprintf(b, "Saldo Tersedia  %s\n", balance)
	b.WriteString("[+ Add Money]  [Spend]\n")
	rule(b)
	b.WriteString("Transaksi Terbaru\n")

	recent := st.Ledger.Recent(st.Recent)
	if len(recent) == 0 {
		b.WriteString("Tidak ada transaksi\n")
		return
	}
	writeRows(b, recent, func(txn model.Transaction) string {
		return format.RelativeDate(txn.Date, st.Now)
	})
}

func writeRows(b *strings.Builder, txns []model.Transaction, date func(model.Transaction) string) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	for _, txn := range txns {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\n", catalog.Icon(txn.Category), txn.Name, date(txn), format.Signed(txn))
	}
	tw.Flush()
}
