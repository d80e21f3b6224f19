package ports

import (
	"context"

	"github.com/bnema/pocketcalc/internal/domain"
)

type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
	Path() string
}

// SettingsWatcher reports settings changes until ctx is done.
type SettingsWatcher interface {
	Watch(ctx context.Context, onChange func(domain.Settings, error)) bool
}
