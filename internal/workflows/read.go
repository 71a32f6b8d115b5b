package workflows

import (
	"context"

	"github.com/PolarWolf314/kauri/internal/audit"
)

// ReadOptions configures the read workflow.
type ReadOptions struct {
	Name string

	// Copy places the secret on the clipboard instead of returning it for display.
	Copy bool
}

// ReadResult contains the outcome of a read operation.
type ReadResult struct {
	Name   string
	Secret string

	// Copied is true when the secret was placed on the clipboard.
	Copied bool
}

// Read decrypts the entry called Name.
//
// Returns ErrNotInitialized if init has not been run.
// Returns ErrSecretNotFound if no such entry exists.
// Returns ErrDecryptFailed if the PGP tool cannot decrypt it.
// Returns ErrClipboardUnavailable if Copy is set and no clipboard works.
func Read(ctx context.Context, deps Deps, opts ReadOptions) (*ReadResult, error) {
	_, s, err := loadStore(deps)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.Read(ctx, opts.Name)
	if err != nil {
		return nil, err
	}

	result := &ReadResult{Name: opts.Name, Secret: string(plaintext)}

	op := audit.OpRead
	if opts.Copy {
		deps.Logger.Debugf("Copying %s to clipboard", opts.Name)
		if err := deps.Clipboard.Copy(result.Secret); err != nil {
			return nil, err
		}
		result.Copied = true
		op = audit.OpCopy
	}

	audit.Log(s.Dir(), audit.Entry{Operation: op, Entry: opts.Name})

	return result, nil
}
