package domain

import (
	"fmt"
	"strings"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

const (
	DefaultMaxFractionDigits = 10
	MaxFractionDigitsLimit   = 15
	DefaultAccentColor       = "214"
)

type DisplaySettings struct {
	MaxFractionDigits int
	Grouping          bool
}

type UISettings struct {
	AccentColor string
	ShowHelp    bool
}

type Settings struct {
	Display  DisplaySettings
	UI       UISettings
	LogLevel LogLevel
}

func DefaultSettings() Settings {
	return Settings{
		Display: DisplaySettings{
			MaxFractionDigits: DefaultMaxFractionDigits,
			Grouping:          true,
		},
		UI: UISettings{
			AccentColor: DefaultAccentColor,
			ShowHelp:    true,
		},
		LogLevel: LogLevelWarn,
	}
}

func (s Settings) Validate() error {
	if s.Display.MaxFractionDigits < 0 {
		return fmt.Errorf("%w: max fraction digits must not be negative", ErrInvalidSettings)
	}
	if s.Display.MaxFractionDigits > MaxFractionDigitsLimit {
		return fmt.Errorf("%w: max fraction digits must be at most %d", ErrInvalidSettings, MaxFractionDigitsLimit)
	}
	if strings.TrimSpace(s.UI.AccentColor) == "" {
		return fmt.Errorf("%w: accent color is required", ErrInvalidSettings)
	}
	if !s.LogLevel.Valid() {
		return fmt.Errorf("%w: unsupported log level %q", ErrInvalidSettings, s.LogLevel)
	}

	return nil
}

func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}
