package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/pocketcalc/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepositoryDefaultsWhenFileMissing(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "config.toml")
	repo, err := NewSettingsRepository(viper.New(), settingsPath)
	require.NoError(t, err)

	settings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Equal(t, settingsPath, repo.Path())
	assert.False(t, repo.Exists())
}

func TestSettingsRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "nested", "config.toml")
	repo, err := NewSettingsRepository(viper.New(), settingsPath)
	require.NoError(t, err)

	want := domain.Settings{
		Display:  domain.DisplaySettings{MaxFractionDigits: 4, Grouping: false},
		UI:       domain.UISettings{AccentColor: "39", ShowHelp: false},
		LogLevel: domain.LogLevelDebug,
	}
	require.NoError(t, repo.Save(context.Background(), want))

	reopened, err := NewSettingsRepository(viper.New(), settingsPath)
	require.NoError(t, err)

	got, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(settingsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(settingsFileMode), info.Mode().Perm())
}

func TestSettingsRepositoryWritesVersionedSchema(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "config.toml")
	repo, err := NewSettingsRepository(viper.New(), settingsPath)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), domain.DefaultSettings()))

	data, err := os.ReadFile(settingsPath)
	require.NoError(t, err)

	var file fileSchema
	require.NoError(t, toml.Unmarshal(data, &file))
	assert.Equal(t, currentSchemaVersion, file.Version)
	assert.Equal(t, 10, file.Display.MaxFractionDigits)
	assert.True(t, file.Display.Grouping)
	assert.Equal(t, "214", file.UI.AccentColor)
	assert.Equal(t, "warn", file.Log.Level)

	entries, err := os.ReadDir(filepath.Dir(settingsPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSettingsRepositoryPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("[display]\ngrouping = false\n"), 0o600))

	repo, err := NewSettingsRepository(viper.New(), settingsPath)
	require.NoError(t, err)

	settings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.Display.Grouping)
	assert.Equal(t, 10, settings.Display.MaxFractionDigits)
	assert.Equal(t, domain.LogLevelWarn, settings.LogLevel)
}

func TestSettingsRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("version = 2\n"), 0o600))

	repo, err := NewSettingsRepository(viper.New(), settingsPath)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported settings schema version 2")
}

func TestSettingsRepositoryRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("[log]\nlevel = \"loud\"\n"), 0o600))

	repo, err := NewSettingsRepository(viper.New(), settingsPath)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestSettingsRepositoryRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("[display\n"), 0o600))

	_, err := NewSettingsRepository(viper.New(), settingsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestSettingsRepositoryEnvironmentOverrides(t *testing.T) {
	t.Setenv("POCKETCALC_DISPLAY_GROUPING", "false")
	t.Setenv("POCKETCALC_LOG_LEVEL", "debug")

	repo, err := NewSettingsRepository(viper.New(), filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	settings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.Display.Grouping)
	assert.Equal(t, domain.LogLevelDebug, settings.LogLevel)
}

func TestSettingsRepositorySaveRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	settingsPath := filepath.Join(t.TempDir(), "config.toml")
	repo, err := NewSettingsRepository(viper.New(), settingsPath)
	require.NoError(t, err)

	invalid := domain.DefaultSettings()
	invalid.Display.MaxFractionDigits = -1

	err = repo.Save(context.Background(), invalid)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
	assert.NoFileExists(t, settingsPath)
}

func TestSettingsRepositoryWatchRequiresFile(t *testing.T) {
	t.Parallel()

	repo, err := NewSettingsRepository(viper.New(), filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	watching := repo.Watch(context.Background(), func(domain.Settings, error) {})
	assert.False(t, watching)
}

func TestSettingsRepositoryHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	repo, err := NewSettingsRepository(viper.New(), filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Save(ctx, domain.DefaultSettings()), context.Canceled)
}
