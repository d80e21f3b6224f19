package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/pocketcalc/internal/application"
	"github.com/spf13/cobra"
)

func newEvalCmd(app *app) *cobra.Command {
	var showHistory bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "eval <expression>...",
		Short:   "Evaluate expressions in one calculator session",
		Example: "  calc eval '2+3*4' '*2'\n  calc eval --history '7/2' '1/3'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := app.newEngine()
			out := cmd.OutOrStdout()

			for _, expression := range args {
				if err := evaluate(engine, expression); err != nil {
					return err
				}
				if asJSON {
					continue
				}
				if _, err := fmt.Fprintln(out, engine.Display()); err != nil {
					return err
				}
			}

			if asJSON {
				return writeSnapshotJSON(cmd, engine.Snapshot())
			}
			if !showHistory {
				return nil
			}

			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
			for _, line := range engine.Snapshot().HistoryLines() {
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showHistory, "history", false, "Print the calculation history afterwards")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final calculator state as JSON")

	return cmd
}

// evaluate types expression and presses "=" unless the expression already did.
func evaluate(engine *application.Engine, expression string) error {
	if err := engine.Type(expression); err != nil {
		return fmt.Errorf("evaluate %q: %w", expression, err)
	}
	if !engine.JustCalculated() {
		engine.Calculate()
	}
	return nil
}

func writeSnapshotJSON(cmd *cobra.Command, snapshot application.Snapshot) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}
