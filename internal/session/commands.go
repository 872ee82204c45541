package session

import (
	"fmt"
	"strings"

	"github.com/dompet-dev/dompet/internal/model"
	"github.com/dompet-dev/dompet/internal/view"
)

// Result tells Run what to do after a command.
type Result struct {
	Quit   bool
	Output string // printed instead of re-rendering the screen
}

// Help lists the commands Execute understands.
const Help = `Commands:
  home                       show balance and recent transactions
  list [all|income|expense]  show history, optionally filtered
  profile                    show the profile screen
  add                        open the add screen
  key <k> [k...]             press keypad keys (0-9, 00)
  del                        delete the last digit
  cat <category>             food, transport, bill, shopping, salary, other
  type <income|expense>      toggle the transaction type
  ok                         confirm the entry
  cancel                     leave the add screen
  export <file>              write the ledger to a CSV file
  help                       show this help
  quit                       end the session
`

// Execute applies one command line.
func (s *Session) Execute(line string) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "home":
		s.Navigate(view.Home)
	case "profile":
		s.Navigate(view.Profile)
	case "add":
		s.Navigate(view.Add)
	case "list":
		if len(args) > 1 {
			return Result{}, fmt.Errorf("list takes at most one filter")
		}
		if len(args) == 1 {
			f, err := model.ParseFilter(strings.ToLower(args[0]))
			if err != nil {
				return Result{}, err
			}
			s.SetFilter(f)
		}
		s.Navigate(view.List)
	case "key", "del", "cat", "type", "cancel":
		if s.screen != view.Add {
			return Result{}, fmt.Errorf("%s: %w", cmd, ErrNotOnAddScreen)
		}
		if err := s.editEntry(cmd, args); err != nil {
			return Result{}, err
		}
	case "ok":
		if _, err := s.Confirm(); err != nil {
			return Result{}, err
		}
	case "export":
		if len(args) != 1 {
			return Result{}, fmt.Errorf("export needs a file name")
		}
		n, err := s.Export(args[0])
		if err != nil {
			return Result{}, err
		}
		return Result{Output: fmt.Sprintf("exported %d transactions to %s\n", n, args[0])}, nil
	case "help", "?":
		return Result{Output: Help}, nil
	case "quit", "exit":
		return Result{Quit: true}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return Result{}, nil
}

func (s *Session) editEntry(cmd string, args []string) error {
	switch cmd {
	case "key":
		if len(args) == 0 {
			return fmt.Errorf("key needs at least one key")
		}
		// All keys apply or none do.
		entry := s.entry
		for _, k := range args {
			if err := entry.Press(k); err != nil {
				return err
			}
		}
		s.entry = entry
	case "del":
		s.entry.Delete()
	case "cat":
		if len(args) != 1 {
			return fmt.Errorf("cat needs exactly one category")
		}
		c, err := model.ParseCategory(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		return s.entry.SelectCategory(c)
	case "type":
		if len(args) != 1 {
			return fmt.Errorf("type needs income or expense")
		}
		t, err := model.ParseType(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		return s.entry.SelectType(t)
	case "cancel":
		s.Navigate(view.Home)
	}
	return nil
}
