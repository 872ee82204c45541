package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/config"
	"github.com/dompet-dev/dompet/internal/ledger"
)

// SeedFileName is the seed file init writes next to the config.
const SeedFileName = "seed.csv"

func newInitCommand() *cobra.Command {
	var name string
	var email string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter config and seed ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, name, email); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized dompet at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name")
	cmd.Flags().StringVar(&email, "email", "", "profile email")

	return cmd
}

func runInit(dir, name, email string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	// Write seed.csv.
	if err := ledger.SaveFile(filepath.Join(dir, SeedFileName), ledger.DefaultSeed(time.Local)); err != nil {
		return fmt.Errorf("writing seed ledger: %w", err)
	}

	// Write dompet.yaml.
	cfg := config.Default()
	cfg.Session.SeedFile = SeedFileName
	if name != "" {
		cfg.Profile.Name = name
	}
	if email != "" {
		cfg.Profile.Email = email
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
