package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/bnema/pocketcalc/internal/application"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

var errNoKeys = errors.New("no keys given")

func newPressCmd(app *app) *cobra.Command {
	var scriptPath string
	var plain bool
	var asJSON bool
	var showHistory bool

	cmd := &cobra.Command{
		Use:   "press <key>...",
		Short: "Press keypad keys and show the calculator",
		Long: "press applies keypad labels in order: digits, '.', + - * / ÷, =, AC, %, +/-, ⌫ (or bs), " +
			"M+, M-, MC and MR. With --file the labels are read from a script, split with shell word rules; " +
			"'#' starts a comment.",
		Example: "  calc press 1 2 + 3 =\n  calc press --plain 5 M+ AC MR",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := args
			if scriptPath != "" {
				scripted, err := readScript(scriptPath)
				if err != nil {
					return err
				}
				labels = append(scripted, labels...)
			}
			if len(labels) == 0 {
				return errNoKeys
			}

			engine := app.newEngine()
			for _, label := range labels {
				action, err := application.ParseAction(label)
				if err != nil {
					return err
				}
				if err := engine.Apply(action); err != nil {
					return fmt.Errorf("press %q: %w", label, err)
				}
			}

			snapshot := engine.Snapshot()
			switch {
			case asJSON:
				return writeSnapshotJSON(cmd, snapshot)
			case plain:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), snapshot.Display)
				return err
			}

			rendered, err := app.panelRenderer(snapshot, app.renderOptions(showHistory))
			if err != nil {
				return fmt.Errorf("render calculator: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&scriptPath, "file", "", "Read keypad labels from a script file")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print only the display")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the calculator state as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show the history panel instead of the keypad")
	cmd.MarkFlagsMutuallyExclusive("plain", "json")

	return cmd
}

func readScript(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key script: %w", err)
	}

	labels, err := shlex.Split(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse key script %s: %w", path, err)
	}
	return labels, nil
}
