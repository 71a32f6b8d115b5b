package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	kerrors "github.com/PolarWolf314/kauri/internal/errors"
)

// Config is the persisted record written by init.
type Config struct {
	Store StoreConfig `toml:"store" json:"store"`
	Key   KeyConfig   `toml:"key" json:"key"`
}

type StoreConfig struct {
	Path string `toml:"path" json:"path"`
}

type KeyConfig struct {
	// ID is the identifier handed to gpg when encrypting.
	ID string `toml:"id" json:"id"`

	// Requested is the identifier as the user typed it.
	Requested string `toml:"requested,omitempty" json:"requested,omitempty"`
}

// Save writes cfg to the config path in settings.
func Save(settings *Settings, cfg *Config) error {
	if err := SaveTOML(settings.ConfigPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Load reads the config written by Save.
//
// Returns ErrNotInitialized if the file does not exist.
// Returns ErrConfigCorrupt if it cannot be decoded or lacks required fields.
func Load(settings *Settings) (*Config, error) {
	if _, err := os.Stat(settings.ConfigPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, kerrors.ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	cfg := &Config{}
	if err := LoadTOML(settings.ConfigPath, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrConfigCorrupt, err)
	}

	if cfg.Store.Path == "" {
		return nil, fmt.Errorf("%w: store path is missing", kerrors.ErrConfigCorrupt)
	}
	if cfg.Key.ID == "" {
		return nil, fmt.Errorf("%w: key id is missing", kerrors.ErrConfigCorrupt)
	}

	return cfg, nil
}

// Exists reports whether a config file is present.
func Exists(settings *Settings) bool {
	_, err := os.Stat(settings.ConfigPath)
	return err == nil
}
