package view

import (
	"fmt"
	"strings"

	"github.com/dompet-dev/dompet/internal/model"
)

var profileMenu = []string{"Edit Profile", "Language", "Settings", "Logout"}

func renderProfile(b *strings.Builder, st State) {
	p := st.Profile

	b.WriteString("Profile\nKelola akun dan preferensi Anda\n")
	rule(b)
	fmt.Fprintf(b, "%s\n%s\n%s ✨\n", p.Name, p.Email, p.Membership)
	rule(b)

	txns := st.Ledger.FilterByType(model.FilterAll)
	fmt.Fprintf(b, "Transaksi    %d\n", len(txns))
	fmt.Fprintf(b, "Bulan Aktif  %d\n", p.MonthsActive)
	fmt.Fprintf(b, "Kategori     %d\n", distinctCategories(txns))
	rule(b)

	for _, item := range profileMenu {
		fmt.Fprintf(b, "  %s  ›\n", item)
	}
	rule(b)
	fmt.Fprintf(b, "Dompet %s\n", st.Version)
}

func distinctCategories(txns []model.Transaction) int {
	seen := make(map[model.Category]struct{})
	for _, txn := range txns {
		seen[txn.Category] = struct{}{}
	}
	return len(seen)
}
