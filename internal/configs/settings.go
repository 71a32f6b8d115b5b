package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the per-user config and data directories.
const AppName = "kauri"

// GPGBinaryEnvVar overrides the gpg executable.
const GPGBinaryEnvVar = "KAURI_GPG"

// Environment carries the environment values that determine where kauri
// keeps its files. Tests build one directly instead of touching the process
// environment.
type Environment struct {
	Home       string
	ConfigHome string // $XDG_CONFIG_HOME, may be empty
	DataHome   string // $XDG_DATA_HOME, may be empty
	GPGBinary  string // $KAURI_GPG, may be empty
}

// Settings holds the resolved per-user paths.
type Settings struct {
	// ConfigDir is the directory containing the config file.
	ConfigDir string

	// ConfigPath is the full path of config.toml.
	ConfigPath string

	// DefaultStorePath is used by init when no --path is given.
	DefaultStorePath string
}

// EnvironmentFromOS reads the process environment.
func EnvironmentFromOS() (Environment, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Environment{}, fmt.Errorf("error getting home directory: %w", err)
	}

	return Environment{
		Home:       home,
		ConfigHome: os.Getenv("XDG_CONFIG_HOME"),
		DataHome:   os.Getenv("XDG_DATA_HOME"),
		GPGBinary:  os.Getenv(GPGBinaryEnvVar),
	}, nil
}

// ResolveSettings computes the config and default store locations from env.
// XDG directories win over the home-relative defaults.
func ResolveSettings(env Environment) (*Settings, error) {
	configHome := env.ConfigHome
	dataHome := env.DataHome

	if configHome == "" || dataHome == "" {
		if env.Home == "" {
			return nil, fmt.Errorf("cannot resolve settings: home directory is unknown")
		}
	}

	if configHome == "" {
		configHome = filepath.Join(env.Home, ".config")
	}
	if dataHome == "" {
		dataHome = filepath.Join(env.Home, ".local", "share")
	}

	configDir := filepath.Join(configHome, AppName)

	return &Settings{
		ConfigDir:        configDir,
		ConfigPath:       filepath.Join(configDir, "config.toml"),
		DefaultStorePath: filepath.Join(dataHome, AppName, "store"),
	}, nil
}
