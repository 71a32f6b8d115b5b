package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/kauri/internal/audit"
	"github.com/PolarWolf314/kauri/internal/configs"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// KeyID is the key identifier supplied by the user.
	KeyID string

	// Path is the store directory. Empty means the default under the data directory.
	Path string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// StorePath is the store directory written to the configuration.
	StorePath string

	// ConfigPath is where the configuration was saved.
	ConfigPath string

	// KeyID is the identifier that will be used for encryption.
	KeyID string

	// RequestedKey is the identifier as supplied.
	RequestedKey string

	// Resolved is true when KeyID is a fingerprint from the key ring.
	Resolved bool

	// ResolveErr explains why resolution fell back to the literal identifier.
	ResolveErr error

	// CreatedStore is true if the store directory did not exist before.
	CreatedStore bool

	// Reinitialized is true if a previous configuration was replaced.
	Reinitialized bool
}

// Init creates the store directory and writes the configuration.
//
// The key identifier is resolved against the key ring. If it names exactly
// one key its fingerprint is stored; otherwise the literal identifier is
// kept and ResolveErr explains why. Either way both values are persisted.
func Init(ctx context.Context, deps Deps, opts InitOptions) (*InitResult, error) {
	keyID := strings.TrimSpace(opts.KeyID)
	if keyID == "" {
		return nil, fmt.Errorf("a key identifier is required")
	}

	storePath := opts.Path
	if storePath == "" {
		storePath = deps.Settings.DefaultStorePath
	}
	if !filepath.IsAbs(storePath) {
		abs, err := filepath.Abs(storePath)
		if err != nil {
			return nil, fmt.Errorf("resolving store path: %w", err)
		}
		storePath = abs
	}
	deps.Logger.Debugf("Store path resolved to %s", storePath)

	result := &InitResult{
		StorePath:     storePath,
		ConfigPath:    deps.Settings.ConfigPath,
		RequestedKey:  keyID,
		Reinitialized: configs.Exists(deps.Settings),
	}

	info, err := os.Stat(storePath)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("store path %s exists and is not a directory", storePath)
	case errors.Is(err, os.ErrNotExist):
		result.CreatedStore = true
	case err != nil:
		return nil, fmt.Errorf("checking store path: %w", err)
	}

	if err := os.MkdirAll(storePath, 0700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	deps.Logger.Debugf("Resolving key identifier %q", keyID)
	fingerprint, err := deps.Resolver.ResolveKey(ctx, keyID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		deps.Logger.Warnf("Key resolution failed, using literal identifier: %v", err)
		result.KeyID = keyID
		result.ResolveErr = err
	} else {
		deps.Logger.Infof("Resolved %q to %s", keyID, fingerprint)
		result.KeyID = fingerprint
		result.Resolved = true
	}

	cfg := &configs.Config{
		Store: configs.StoreConfig{Path: storePath},
		Key: configs.KeyConfig{
			ID:        result.KeyID,
			Requested: keyID,
		},
	}
	if err := configs.Save(deps.Settings, cfg); err != nil {
		return nil, err
	}
	deps.Logger.Infof("Configuration written to %s", deps.Settings.ConfigPath)

	audit.Log(storePath, audit.Entry{Operation: audit.OpInit, Key: result.KeyID})

	return result, nil
}
