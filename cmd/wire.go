package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	displayadapter "github.com/bnema/pocketcalc/internal/adapters/render/display"
	tomlrepo "github.com/bnema/pocketcalc/internal/adapters/repo/toml"
	"github.com/bnema/pocketcalc/internal/application"
	"github.com/bnema/pocketcalc/internal/domain"
	"github.com/bnema/pocketcalc/internal/expr"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

type app struct {
	settingsRepo  *tomlrepo.SettingsRepository
	settings      domain.Settings
	logger        *slog.Logger
	panelRenderer func(application.Snapshot, displayadapter.RenderOptions) (string, error)
	isTerminal    func(io.Reader) bool
}

func wireApp(ctx context.Context, configPath string, stderr io.Writer) (*app, error) {
	repo, err := tomlrepo.NewSettingsRepository(viper.New(), configPath)
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	settings, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger := newLogger(stderr, settings.LogLevel)
	logger.Debug("settings loaded", "path", repo.Path(), "file", repo.Exists())

	return &app{
		settingsRepo:  repo,
		settings:      settings,
		logger:        logger,
		panelRenderer: displayadapter.Render,
		isTerminal:    isTerminalReader,
	}, nil
}

func (a *app) newEngine() *application.Engine {
	return application.NewEngine(expr.NewFormatter(a.settings.Display), a.logger)
}

func (a *app) renderOptions(showHistory bool) displayadapter.RenderOptions {
	return displayadapter.RenderOptions{
		ShowHistory: showHistory,
		ShowKeypad:  !showHistory,
		AccentColor: a.settings.UI.AccentColor,
	}
}

func newLogger(w io.Writer, level domain.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))
}

func slogLevel(level domain.LogLevel) slog.Level {
	switch level {
	case domain.LogLevelDebug:
		return slog.LevelDebug
	case domain.LogLevelInfo:
		return slog.LevelInfo
	case domain.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
