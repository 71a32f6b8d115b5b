// Package errors provides typed error values for kauri.
//
// Sentinel errors let callers branch on failure kinds with errors.Is()
// instead of string matching. Internal packages wrap them with context:
//
//	return fmt.Errorf("reading %s: %w", name, errors.ErrSecretNotFound)
//
// and the cmd layer maps them to user-facing messages:
//
//	if errors.Is(err, kerrors.ErrNotInitialized) {
//	    // suggest running `kauri init`
//	}
//
// # Error Categories
//
//   - Configuration: ErrNotInitialized, ErrConfigCorrupt
//   - Keys: ErrKeyResolveFailed, ErrToolNotFound
//   - Crypto: ErrEncryptFailed, ErrDecryptFailed
//   - Entries: ErrSecretNotFound, ErrSecretExists, ErrInvalidName,
//     ErrEmptySecret, ErrConfirmationMismatch
//   - Clipboard: ErrClipboardUnavailable
package errors
