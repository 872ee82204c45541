// Package session drives one interactive run: it owns the ledger for the
// lifetime of the session and maps typed commands onto screens.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dompet-dev/dompet/internal/activity"
	"github.com/dompet-dev/dompet/internal/config"
	"github.com/dompet-dev/dompet/internal/keypad"
	"github.com/dompet-dev/dompet/internal/ledger"
	"github.com/dompet-dev/dompet/internal/model"
	"github.com/dompet-dev/dompet/internal/view"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNotOnAddScreen = errors.New("command only works on the add screen")
)

// Options holds the dependencies of a Session.
type Options struct {
	Ledger   *ledger.Ledger
	Config   *config.Config
	Activity *activity.Recorder
	Logger   *zerolog.Logger // nil disables logging
	Now      func() time.Time
	Version  string
}

// Session is the state of one interactive run.
type Session struct {
	ledger   *ledger.Ledger
	cfg      *config.Config
	activity *activity.Recorder
	log      zerolog.Logger
	now      func() time.Time
	version  string

	screen view.Screen
	entry  keypad.Entry
	filter model.Filter
}

// New creates a Session on the home screen.
func New(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Ledger == nil {
		opts.Ledger = ledger.New(opts.Now)
	}
	if opts.Activity == nil {
		opts.Activity = activity.NewRecorder(opts.Now)
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	s := &Session{
		ledger:   opts.Ledger,
		cfg:      opts.Config,
		activity: opts.Activity,
		log:      log.With().Str("session", opts.Activity.Session()).Logger(),
		now:      opts.Now,
		version:  opts.Version,
		screen:   view.Home,
		entry:    keypad.NewEntry(),
		filter:   model.FilterAll,
	}
	s.activity.Record(activity.ActionStart, fmt.Sprintf("ledger holds %d transactions", s.ledger.Len()), "")
	return s
}

// Screen returns the current screen.
func (s *Session) Screen() view.Screen { return s.screen }

// Filter returns the list screen's filter.
func (s *Session) Filter() model.Filter { return s.filter }

// Entry returns a copy of the add screen's form.
func (s *Session) Entry() keypad.Entry { return s.entry }

// Ledger returns the session's ledger.
func (s *Session) Ledger() *ledger.Ledger { return s.ledger }

// Activity returns the session's activity recorder.
func (s *Session) Activity() *activity.Recorder { return s.activity }

// Navigate switches screens. Entering the add screen starts a blank form.
func (s *Session) Navigate(screen view.Screen) {
	if screen == view.Add {
		s.entry = keypad.NewEntry()
	}
	if screen != s.screen {
		s.log.Debug().Str("from", string(s.screen)).Str("to", string(screen)).Msg("navigate")
		s.activity.Record(activity.ActionNavigate, string(screen), "")
	}
	s.screen = screen
}

// SetFilter changes the list filter.
func (s *Session) SetFilter(f model.Filter) {
	s.filter = f
	s.activity.Record(activity.ActionFilter, string(f), "")
}

// Render writes the current screen to w.
func (s *Session) Render(w io.Writer) error {
	return view.Render(w, s.screen, s.state())
}

func (s *Session) state() view.State {
	return view.State{
		Ledger:  s.ledger,
		Entry:   s.entry,
		Filter:  s.filter,
		Profile: s.cfg.Profile,
		Recent:  s.cfg.Display.RecentCount,
		Now:     s.now(),
		Version: s.version,
	}
}

// Confirm appends the add screen's entry and returns to home. A zero amount
// appends nothing and leaves the form as it is.
func (s *Session) Confirm() (model.Transaction, error) {
	if s.screen != view.Add {
		return model.Transaction{}, ErrNotOnAddScreen
	}
	txn, err := s.entry.Confirm(s.ledger)
	if err != nil {
		s.log.Debug().Err(err).Str("amount", s.entry.Buffer.String()).Msg("confirm rejected")
		s.activity.Record(activity.ActionReject, err.Error(), "")
		return model.Transaction{}, err
	}
	s.log.Info().
		Str("id", txn.ID).
		Int64("amount", txn.Amount).
		Str("category", string(txn.Category)).
		Str("type", string(txn.Type)).
		Msg("transaction appended")
	s.activity.Record(activity.ActionAppend, fmt.Sprintf("%s %s %d", txn.Type, txn.Category, txn.Amount), txn.ID)
	s.Navigate(view.Home)
	return txn, nil
}

// Export writes the whole ledger, newest first, to a CSV file at path.
func (s *Session) Export(path string) (int, error) {
	txns := s.ledger.All()
	if err := ledger.SaveFile(path, txns); err != nil {
		return 0, fmt.Errorf("exporting ledger: %w", err)
	}
	s.log.Info().Str("path", path).Int("count", len(txns)).Msg("ledger exported")
	s.activity.Record(activity.ActionExport, path, "")
	return len(txns), nil
}

// Close records the end of the session and, when configured, appends the
// activity log to disk.
func (s *Session) Close() error {
	s.activity.Record(activity.ActionEnd, fmt.Sprintf("ledger holds %d transactions", s.ledger.Len()), "")
	path := s.cfg.Session.ActivityLog
	if path == "" {
		return nil
	}
	if err := activity.Append(path, s.activity.Entries()); err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}
	s.log.Info().Str("path", path).Msg("activity log written")
	return nil
}

// Run reads commands from r until quit or EOF, rendering to w after every
// command. Command errors are printed and the session continues.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	if err := s.Render(w); err != nil {
		return err
	}
	scanner := bufio.NewScanner(r)
	for {
		if _, err := fmt.Fprint(w, "> "); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		res, err := s.Execute(line)
		if err != nil {
			if _, werr := fmt.Fprintf(w, "error: %v\n", err); werr != nil {
				return werr
			}
			continue
		}
		if res.Quit {
			break
		}
		if res.Output != "" {
			if _, err := io.WriteString(w, res.Output); err != nil {
				return err
			}
			continue
		}
		if err := s.Render(w); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}
