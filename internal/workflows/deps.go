package workflows

import (
	"github.com/PolarWolf314/kauri/internal/clipboard"
	"github.com/PolarWolf314/kauri/internal/configs"
	logger "github.com/PolarWolf314/kauri/internal/logging"
	"github.com/PolarWolf314/kauri/internal/pgp"
	"github.com/PolarWolf314/kauri/internal/store"
)

// Deps bundles the collaborators every workflow needs.
type Deps struct {
	Settings  *configs.Settings
	Crypter   pgp.Crypter
	Resolver  pgp.KeyResolver
	Clipboard clipboard.Copier
	Logger    logger.Logger
}

// loadStore reads the configuration and opens the store it points at.
func loadStore(deps Deps) (*configs.Config, *store.Store, error) {
	deps.Logger.Debugf("Loading config from %s", deps.Settings.ConfigPath)
	cfg, err := configs.Load(deps.Settings)
	if err != nil {
		return nil, nil, err
	}
	deps.Logger.Debugf("Store path: %s, key: %s", cfg.Store.Path, cfg.Key.ID)

	return cfg, store.New(cfg.Store.Path, deps.Crypter), nil
}
