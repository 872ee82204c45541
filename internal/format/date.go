package format

import (
	"fmt"
	"time"
)

const (
	Today     = "Hari ini"
	Yesterday = "Kemarin"
)

var shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// RelativeDate labels t relative to now: "Hari ini" on the same calendar
// day, "Kemarin" on the day before, otherwise ShortDate. Days are compared
// in now's location.
func RelativeDate(t, now time.Time) string {
	t = t.In(now.Location())
	if sameDay(t, now) {
		return Today
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return Yesterday
	}
	return ShortDate(t)
}

// ShortDate renders day and short month: "20 Nov".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), shortMonths[t.Month()-1])
}

// FullDate renders day, short month and year: "20 Nov 2025".
func FullDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
