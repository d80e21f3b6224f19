package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "pocketcalc: a pocket calculator for the terminal",
		Long: "calc opens an interactive pocket calculator with memory and history. " +
			"When stdin is not a terminal it evaluates one expression per input line.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(cmd.Context(), configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.isTerminal(cmd.InOrStdin()) {
				return runTUI(cmd, app)
			}
			return runPipe(cmd, app)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default is $XDG_CONFIG_HOME/pocketcalc/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTUICmd(app),
		newEvalCmd(app),
		newPressCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}

// runPipe evaluates each non-blank stdin line in one session and prints the
// display after it.
func runPipe(cmd *cobra.Command, app *app) error {
	engine := app.newEngine()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := evaluate(engine, line); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), engine.Display()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
