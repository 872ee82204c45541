package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet-dev/dompet/internal/config"
	"github.com/dompet-dev/dompet/internal/keypad"
	"github.com/dompet-dev/dompet/internal/ledger"
	"github.com/dompet-dev/dompet/internal/model"
)

var testNow = time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)

func testState(t *testing.T) State {
	t.Helper()
	l := ledger.New(func() time.Time { return testNow })
	require.NoError(t, l.Seed(ledger.DefaultSeed(time.UTC)))
	return State{
		Ledger:  l,
		Entry:   keypad.NewEntry(),
		Filter:  model.FilterAll,
		Profile: config.Default().Profile,
		Recent:  5,
		Now:     testNow,
		Version: "dev",
	}
}

func render(t *testing.T, screen Screen, st State) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, screen, st))
	return buf.String()
}

func lineWith(t *testing.T, out, needle string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	t.Fatalf("no line containing %q in:\n%s", needle, out)
	return ""
}

func TestParseScreen(t *testing.T) {
	for _, s := range []Screen{Home, Add, List, Profile} {
		got, err := ParseScreen(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseScreen("settings")
	assert.Error(t, err)
}

func TestRender_UnknownScreen(t *testing.T) {
	err := Render(&bytes.Buffer{}, Screen("settings"), testState(t))
	assert.Error(t, err)
}

func TestHome(t *testing.T) {
	out := render(t, Home, testState(t))

	assert.Contains(t, out, "Total Balance\nRp 2.305.000\n")
	assert.Contains(t, out, "Saldo Tersedia  Rp 2.305.000")
	assert.Contains(t, out, "Transaksi Terbaru")

	salary := lineWith(t, out, "Salary")
	assert.Contains(t, salary, "💰")
	assert.Contains(t, salary, "18 Nov")
	assert.Contains(t, salary, "+Rp 2.500.000")

	gojek := lineWith(t, out, "Gojek Ride")
	assert.Contains(t, gojek, "Kemarin")
	assert.Contains(t, gojek, "-Rp 18.000")

	pln := lineWith(t, out, "PLN Token")
	assert.Contains(t, pln, "Hari ini")
	assert.Contains(t, pln, "📄")

	assert.Less(t, strings.Index(out, "Salary"), strings.Index(out, "PLN Token"), "head first")
}

func TestHome_RecentLimit(t *testing.T) {
	st := testState(t)
	st.Recent = 2
	out := render(t, Home, st)

	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "Gojek Ride")
	assert.NotContains(t, out, "Alfamart")
}

func TestHome_Empty(t *testing.T) {
	st := testState(t)
	st.Ledger = ledger.New(nil)
	out := render(t, Home, st)

	assert.Contains(t, out, "Rp 0")
	assert.Contains(t, out, "Tidak ada transaksi")
}

func TestAdd(t *testing.T) {
	st := testState(t)
	out := render(t, Add, st)

	assert.Contains(t, out, "[Pengeluaran]")
	assert.Contains(t, out, " Pemasukan ")
	assert.Contains(t, out, "Nominal\nRp 0\n")
	assert.Contains(t, lineWith(t, out, "(food)"), ">")
	assert.NotContains(t, lineWith(t, out, "(bill)"), ">")
	assert.Contains(t, out, "[Continue] (disabled)")

	for _, k := range []string{"7", "5", "00", "0"} {
		require.NoError(t, st.Entry.Press(k))
	}
	require.NoError(t, st.Entry.SelectType(model.TypeIncome))
	require.NoError(t, st.Entry.SelectCategory(model.CategorySalary))
	out = render(t, Add, st)

	assert.Contains(t, out, "[Pemasukan]")
	assert.Contains(t, out, "Nominal\nRp 75.000\n")
	assert.Contains(t, lineWith(t, out, "(salary)"), ">")
	assert.NotContains(t, out, "(disabled)")
}

func TestList_All(t *testing.T) {
	out := render(t, List, testState(t))

	assert.Contains(t, out, "Semua Transaksi")
	assert.Contains(t, out, "Pemasukan    Rp 2.500.000")
	assert.Contains(t, out, "Pengeluaran  Rp 195.000")
	assert.Contains(t, out, "[Semua]")
	assert.Contains(t, lineWith(t, out, "Warteg Sederhana"), "20 Nov 2025")
	assert.Contains(t, out, "Alfamart")
}

func TestList_Filtered(t *testing.T) {
	st := testState(t)
	st.Filter = model.FilterIncome
	out := render(t, List, st)

	assert.Contains(t, out, "[Pemasukan]")
	assert.Contains(t, out, "Salary")
	assert.NotContains(t, out, "Alfamart")
	// Totals always cover the whole ledger.
	assert.Contains(t, out, "Pengeluaran  Rp 195.000")
}

func TestList_EmptyFilter(t *testing.T) {
	st := testState(t)
	l := ledger.New(nil)
	_, err := l.Append(model.Input{Name: "Gaji", Amount: 10, Category: model.CategorySalary, Type: model.TypeIncome})
	require.NoError(t, err)
	st.Ledger = l
	st.Filter = model.FilterExpense

	out := render(t, List, st)
	assert.Contains(t, out, "[Pengeluaran]")
	assert.Contains(t, out, "Tidak ada transaksi")
}

func TestProfile(t *testing.T) {
	st := testState(t)
	st.Profile.Name = "Sari"
	st.Profile.Email = "sari@example.com"
	out := render(t, Profile, st)

	assert.Contains(t, out, "Sari\nsari@example.com\nPremium Member ✨")
	assert.Contains(t, out, "Transaksi    5")
	assert.Contains(t, out, "Bulan Aktif  6")
	assert.Contains(t, out, "Kategori     5")
	assert.Contains(t, out, "Logout")
	assert.Contains(t, out, "Dompet dev")
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Pemasukan", TypeLabel(model.TypeIncome))
	assert.Equal(t, "Pengeluaran", TypeLabel(model.TypeExpense))
	assert.Equal(t, "Semua", FilterLabel(model.FilterAll))
	assert.Equal(t, "Pemasukan", FilterLabel(model.FilterIncome))
	assert.Equal(t, "Pengeluaran", FilterLabel(model.FilterExpense))
}
