// Package view renders the four screens of a session as plain text.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dompet-dev/dompet/internal/config"
	"github.com/dompet-dev/dompet/internal/keypad"
	"github.com/dompet-dev/dompet/internal/ledger"
	"github.com/dompet-dev/dompet/internal/model"
)

// Screen is one of the mutually exclusive views.
type Screen string

const (
	Home    Screen = "home"
	Add     Screen = "add"
	List    Screen = "list"
	Profile Screen = "profile"
)

// ParseScreen converts a string into a Screen.
func ParseScreen(s string) (Screen, error) {
	switch sc := Screen(s); sc {
	case Home, Add, List, Profile:
		return sc, nil
	}
	return "", fmt.Errorf("unknown screen %q", s)
}

// Ledger is the read side of *ledger.Ledger the screens need.
type Ledger interface {
	Len() int
	Balance() int64
	Recent(n int) []model.Transaction
	FilterByType(f model.Filter) []model.Transaction
	Summary() ledger.Summary
}

// State is everything a screen may read.
type State struct {
	Ledger  Ledger
	Entry   keypad.Entry
	Filter  model.Filter
	Profile config.ProfileConfig
	Recent  int // rows on the home screen
	Now     time.Time
	Version string
}

// Render writes screen to w.
func Render(w io.Writer, screen Screen, st State) error {
	var b strings.Builder
	switch screen {
	case Home:
		renderHome(&b, st)
	case Add:
		renderAdd(&b, st)
	case List:
		renderList(&b, st)
	case Profile:
		renderProfile(&b, st)
	default:
		return fmt.Errorf("unknown screen %q", screen)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func rule(b *strings.Builder) {
	b.WriteString(strings.Repeat("─", 40))
	b.WriteByte('\n')
}
