package cmd

import (
	"fmt"

	"github.com/bnema/pocketcalc/internal/adapters/tui"
	"github.com/bnema/pocketcalc/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, app)
		},
	}
}

func runTUI(cmd *cobra.Command, app *app) error {
	ctx := cmd.Context()
	program := tui.NewProgram(app.newEngine(), app.settings,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	watching := app.settingsRepo.Watch(ctx, func(settings domain.Settings, err error) {
		if err != nil {
			app.logger.Warn("settings reload failed", "path", app.settingsRepo.Path(), "error", err)
			return
		}
		app.logger.Info("settings reloaded", "path", app.settingsRepo.Path())
		program.Send(tui.SettingsChangedMsg{Settings: settings})
	})
	app.logger.Debug("starting calculator", "watch_settings", watching)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run calculator: %w", err)
	}
	return nil
}
