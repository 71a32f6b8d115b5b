// Package configs resolves kauri's per-user paths and persists its
// configuration.
//
// # Settings
//
// Paths are computed by ResolveSettings from an injected Environment:
//
//   - Config file: $XDG_CONFIG_HOME/kauri/config.toml
//     (falls back to ~/.config/kauri/config.toml)
//   - Default store: $XDG_DATA_HOME/kauri/store
//     (falls back to ~/.local/share/kauri/store)
//
// EnvironmentFromOS reads the real environment; tests construct an
// Environment pointing at temporary directories.
//
// # Configuration
//
// The config file is TOML:
//
//	[store]
//	path = "/home/alice/.local/share/kauri/store"
//
//	[key]
//	id = "0123456789ABCDEF0123456789ABCDEF01234567"
//	requested = "alice@example.com"
//
// key.id is what gets passed to gpg. key.requested keeps the identifier
// the user gave to init, which differs from key.id when it was resolved
// to a fingerprint.
//
// Load returns errors.ErrNotInitialized when the file is absent and
// errors.ErrConfigCorrupt when it cannot be decoded or is incomplete.
package configs
