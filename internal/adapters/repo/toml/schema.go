package toml

import (
	"fmt"

	"github.com/bnema/pocketcalc/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Display displaySchema `toml:"display"`
	UI      uiSchema      `toml:"ui"`
	Log     logSchema     `toml:"log"`
}

type displaySchema struct {
	MaxFractionDigits int  `toml:"max_fraction_digits"`
	Grouping          bool `toml:"grouping"`
}

type uiSchema struct {
	AccentColor string `toml:"accent_color"`
	ShowHelp    bool   `toml:"show_help"`
}

type logSchema struct {
	Level string `toml:"level"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func validateVersion(version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", version, currentSchemaVersion)
	}

	return nil
}

func toSchema(settings domain.Settings) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Display: displaySchema{
			MaxFractionDigits: settings.Display.MaxFractionDigits,
			Grouping:          settings.Display.Grouping,
		},
		UI: uiSchema{
			AccentColor: settings.UI.AccentColor,
			ShowHelp:    settings.UI.ShowHelp,
		},
		Log: logSchema{
			Level: string(settings.LogLevel),
		},
	}
}

// MarshalSettings encodes settings in the on-disk file format.
func MarshalSettings(settings domain.Settings) ([]byte, error) {
	data, err := toml.Marshal(toSchema(settings))
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}
