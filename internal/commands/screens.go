package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dompet-dev/dompet/internal/buildinfo"
	"github.com/dompet-dev/dompet/internal/logging"
	"github.com/dompet-dev/dompet/internal/model"
	"github.com/dompet-dev/dompet/internal/session"
	"github.com/dompet-dev/dompet/internal/view"
)

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			runErr := s.Run(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := s.Close(); err != nil && runErr == nil {
				return err
			}
			return runErr
		},
	}
}

func newHomeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the balance and recent transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderOnce(cmd, view.Home, model.FilterAll)
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show transaction history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return err
			}
			return a.renderOnce(cmd, view.List, f)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "all, income or expense")

	return cmd
}

func newProfileCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the profile screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderOnce(cmd, view.Profile, model.FilterAll)
		},
	}
}

func (a *app) newSession() (*session.Session, error) {
	now, err := a.clock()
	if err != nil {
		return nil, err
	}
	l, err := a.newLedger(now)
	if err != nil {
		return nil, err
	}
	log := logging.Component(a.log, "session")
	return session.New(session.Options{
		Ledger:  l,
		Config:  a.cfg,
		Logger:  &log,
		Now:     now,
		Version: buildinfo.Version,
	}), nil
}

// renderOnce shows a single screen of a fresh session.
func (a *app) renderOnce(cmd *cobra.Command, screen view.Screen, filter model.Filter) error {
	s, err := a.newSession()
	if err != nil {
		return err
	}
	if filter != model.FilterAll {
		s.SetFilter(filter)
	}
	s.Navigate(screen)
	if err := s.Render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("rendering %s: %w", screen, err)
	}
	return nil
}
