package cmd

import (
	"fmt"

	tomlrepo "github.com/bnema/pocketcalc/internal/adapters/repo/toml"
	"github.com/bnema/pocketcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage calculator settings",
	}

	configCmd.AddCommand(newConfigInitCmd(app), newConfigShowCmd(app))

	return configCmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.settingsRepo.Exists() && !force {
				return fmt.Errorf("%s: %w (use --force to overwrite)", app.settingsRepo.Path(), domain.ErrSettingsFileExists)
			}

			if err := app.settingsRepo.Save(cmd.Context(), domain.DefaultSettings()); err != nil {
				return fmt.Errorf("init settings: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", app.settingsRepo.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := tomlrepo.MarshalSettings(app.settings)
			if err != nil {
				return err
			}

			source := app.settingsRepo.Path()
			if !app.settingsRepo.Exists() {
				source += " (not found, using defaults)"
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "# %s\n", source); err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
