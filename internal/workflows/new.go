package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/kauri/internal/audit"
	kerrors "github.com/PolarWolf314/kauri/internal/errors"
	"github.com/PolarWolf314/kauri/internal/store"
)

// NewOptions configures the new workflow.
type NewOptions struct {
	// Name is the entry name.
	Name string

	// Secret and Confirmation are the two values the user typed.
	Secret       string
	Confirmation string

	// Force overwrites an existing entry.
	Force bool
}

// NewResult contains the outcome of a new operation.
type NewResult struct {
	Name string

	// Path is the ciphertext file that was written.
	Path string

	// KeyID is the key the secret was encrypted for.
	KeyID string

	// Overwrote is true if an existing entry was replaced.
	Overwrote bool
}

// NewPreCheckResult contains what is known before prompting for the secret.
type NewPreCheckResult struct {
	// Path is where the entry would be written.
	Path string

	// Exists is true if an entry with this name already exists.
	Exists bool
}

// NewPreCheck validates configuration and name before the user is prompted.
//
// Returns ErrNotInitialized if init has not been run.
// Returns ErrInvalidName if the name cannot be stored.
// Returns ErrSecretExists if the entry exists and force is false.
func NewPreCheck(ctx context.Context, deps Deps, name string, force bool) (*NewPreCheckResult, error) {
	_, s, err := loadStore(deps)
	if err != nil {
		return nil, err
	}
	return checkTarget(s, name, force)
}

// checkTarget validates name and reports whether writing it is allowed.
func checkTarget(s *store.Store, name string, force bool) (*NewPreCheckResult, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	exists, err := s.Exists(name)
	if err != nil {
		return nil, fmt.Errorf("checking for existing entry: %w", err)
	}
	if exists && !force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrSecretExists, name)
	}

	return &NewPreCheckResult{Path: path, Exists: exists}, nil
}

// New encrypts Secret for the configured key and stores it as Name.
// It runs the same checks as NewPreCheck again, since time passes while the
// user types and New may also be called without a pre-check.
//
// Returns ErrNotInitialized if init has not been run.
// Returns ErrConfirmationMismatch if Secret and Confirmation differ.
// Returns ErrEmptySecret if Secret is empty.
// Returns ErrSecretExists if the entry exists and Force is false.
// No file is created when any of these are returned.
func New(ctx context.Context, deps Deps, opts NewOptions) (*NewResult, error) {
	cfg, s, err := loadStore(deps)
	if err != nil {
		return nil, err
	}

	if _, err := s.Path(opts.Name); err != nil {
		return nil, err
	}

	if opts.Secret != opts.Confirmation {
		return nil, kerrors.ErrConfirmationMismatch
	}
	if opts.Secret == "" {
		return nil, kerrors.ErrEmptySecret
	}

	target, err := checkTarget(s, opts.Name, opts.Force)
	if err != nil {
		return nil, err
	}

	deps.Logger.Debugf("Encrypting %s for key %s", opts.Name, cfg.Key.ID)
	path, err := s.Write(ctx, opts.Name, []byte(opts.Secret), cfg.Key.ID)
	if err != nil {
		return nil, err
	}
	deps.Logger.Infof("Wrote %s", path)

	audit.Log(s.Dir(), audit.Entry{Operation: audit.OpNew, Entry: opts.Name, Key: cfg.Key.ID})

	return &NewResult{
		Name:      opts.Name,
		Path:      path,
		KeyID:     cfg.Key.ID,
		Overwrote: target.Exists,
	}, nil
}
