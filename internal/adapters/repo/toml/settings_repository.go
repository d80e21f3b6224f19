package toml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/pocketcalc/internal/domain"
	"github.com/bnema/pocketcalc/internal/ports"
	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName       = "config"
	configType       = "toml"
	configDirName    = "pocketcalc"
	configFileName   = "config.toml"
	envPrefix        = "POCKETCALC"
	settingsFileMode = 0o600
	settingsDirMode  = 0o700
	tempFilePattern  = ".config-*.toml.tmp"

	keyVersion           = "version"
	keyMaxFractionDigits = "display.max_fraction_digits"
	keyGrouping          = "display.grouping"
	keyAccentColor       = "ui.accent_color"
	keyShowHelp          = "ui.show_help"
	keyLogLevel          = "log.level"
)

type SettingsRepository struct {
	cfg  *viper.Viper
	path string
	mu   sync.RWMutex
}

var (
	_ ports.SettingsRepository = (*SettingsRepository)(nil)
	_ ports.SettingsWatcher    = (*SettingsRepository)(nil)
)

// NewSettingsRepository reads settings from configPath, or from
// config.toml in the user config directory when configPath is empty. A
// missing file is not an error: defaults and POCKETCALC_* environment
// variables still apply.
func NewSettingsRepository(cfg *viper.Viper, configPath string) (*SettingsRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path, err := resolveSettingsPath(configPath)
	if err != nil {
		return nil, err
	}

	defaults := domain.DefaultSettings()
	cfg.SetDefault(keyMaxFractionDigits, defaults.Display.MaxFractionDigits)
	cfg.SetDefault(keyGrouping, defaults.Display.Grouping)
	cfg.SetDefault(keyAccentColor, defaults.UI.AccentColor)
	cfg.SetDefault(keyShowHelp, defaults.UI.ShowHelp)
	cfg.SetDefault(keyLogLevel, string(defaults.LogLevel))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetConfigType(configType)
	if configPath != "" {
		cfg.SetConfigFile(path)
	} else {
		cfg.SetConfigName(configName)
		cfg.AddConfigPath(filepath.Dir(path))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &SettingsRepository{cfg: cfg, path: path}, nil
}

func (r *SettingsRepository) Path() string {
	return r.path
}

// Exists reports whether the settings file is present on disk.
func (r *SettingsRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

func (r *SettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := validateVersion(r.cfg.GetInt(keyVersion)); err != nil {
		return domain.Settings{}, err
	}

	settings := domain.Settings{
		Display: domain.DisplaySettings{
			MaxFractionDigits: r.cfg.GetInt(keyMaxFractionDigits),
			Grouping:          r.cfg.GetBool(keyGrouping),
		},
		UI: domain.UISettings{
			AccentColor: r.cfg.GetString(keyAccentColor),
			ShowHelp:    r.cfg.GetBool(keyShowHelp),
		},
		LogLevel: domain.LogLevel(strings.ToLower(r.cfg.GetString(keyLogLevel))),
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("load settings from %s: %w", r.path, err)
	}

	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := toSchema(settings)
	if err := r.writeSchema(file); err != nil {
		return err
	}

	r.cfg.SetConfigFile(r.path)
	if err := r.cfg.ReadInConfig(); err != nil {
		return fmt.Errorf("reload config file: %w", err)
	}

	return nil
}

// Watch calls onChange with freshly loaded settings whenever the settings
// file changes on disk. It returns false when there is no file to watch.
func (r *SettingsRepository) Watch(ctx context.Context, onChange func(domain.Settings, error)) bool {
	if !r.Exists() {
		return false
	}

	r.cfg.OnConfigChange(func(event fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}
		if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
			return
		}
		onChange(r.Load(ctx))
	})
	r.cfg.WatchConfig()

	return true
}

func (r *SettingsRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), settingsDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp settings file: %w", err)
	}

	if err := tempFile.Chmod(settingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	cleanup = false
	return nil
}

func resolveSettingsPath(configPath string) (string, error) {
	if configPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve config directory: %w", err)
		}
		configPath = filepath.Join(configDir, configDirName, configFileName)
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
