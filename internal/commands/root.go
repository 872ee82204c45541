package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/buildinfo"
	"github.com/dompet-dev/dompet/internal/config"
	"github.com/dompet-dev/dompet/internal/ledger"
	"github.com/dompet-dev/dompet/internal/logging"
)

// app carries what PersistentPreRunE loads to every subcommand.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	log        zerolog.Logger
	now        func() time.Time
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	rootCmd := &cobra.Command{
		Use:     "dompet",
		Short:   "Personal income and expense tracker",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newShellCommand(a))
	rootCmd.AddCommand(newHomeCommand(a))
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newProfileCommand(a))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(a.configPath)
	} else {
		cfg, err = config.LoadOrDefault(a.configPath)
	}
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.Log.Level, Console: true})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}

// clock returns a.now shifted into display.timezone.
func (a *app) clock() (func() time.Time, error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}
	return func() time.Time { return a.now().In(loc) }, nil
}

// newLedger builds the session's starting ledger from the seed file, or the
// built-in sample when none is configured. A relative seed path is resolved
// against the config file's directory.
func (a *app) newLedger(now func() time.Time) (*ledger.Ledger, error) {
	loc := now().Location()
	l := ledger.New(now)
	log := logging.Component(a.log, "ledger")

	seed := ledger.DefaultSeed(loc)
	source := "built-in"
	if path := a.cfg.Session.SeedFile; path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(a.configPath), path)
		}
		var err error
		seed, err = ledger.LoadFile(path)
		if err != nil {
			return nil, err
		}
		source = path
	}

	if err := l.Seed(seed); err != nil {
		return nil, fmt.Errorf("seeding ledger from %s: %w", source, err)
	}
	log.Info().Str("source", source).Int("count", l.Len()).Msg("ledger seeded")
	return l, nil
}
