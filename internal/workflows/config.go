package workflows

import (
	"context"

	"github.com/PolarWolf314/kauri/internal/configs"
)

// ShowConfigResult contains the active configuration.
type ShowConfigResult struct {
	ConfigPath string
	Config     *configs.Config
}

// ShowConfig loads the configuration without touching the store.
//
// Returns ErrNotInitialized or ErrConfigCorrupt from configs.Load.
func ShowConfig(ctx context.Context, deps Deps) (*ShowConfigResult, error) {
	cfg, err := configs.Load(deps.Settings)
	if err != nil {
		return nil, err
	}
	return &ShowConfigResult{ConfigPath: deps.Settings.ConfigPath, Config: cfg}, nil
}
