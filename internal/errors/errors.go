package errors

import "errors"

// Configuration errors indicate the store has not been set up or its config is unusable.
var (
	// ErrNotInitialized indicates no configuration exists yet; run init first.
	ErrNotInitialized = errors.New("kauri has not been initialized")

	// ErrConfigCorrupt indicates the configuration file exists but cannot be used.
	ErrConfigCorrupt = errors.New("configuration is corrupt")
)

// Key errors indicate problems locating the encryption key.
var (
	// ErrKeyResolveFailed indicates the key identifier did not match exactly one key.
	ErrKeyResolveFailed = errors.New("could not resolve key identifier")

	// ErrToolNotFound indicates the external encryption tool is not installed.
	ErrToolNotFound = errors.New("encryption tool not found")
)

// Cryptographic errors indicate the external tool failed.
var (
	// ErrEncryptFailed indicates the encryption tool exited with an error.
	ErrEncryptFailed = errors.New("failed to encrypt secret")

	// ErrDecryptFailed indicates the decryption tool exited with an error.
	ErrDecryptFailed = errors.New("failed to decrypt secret")
)

// Entry errors indicate issues with a named secret.
var (
	// ErrSecretNotFound indicates no entry exists with the requested name.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretExists indicates an entry already exists and overwriting was not requested.
	ErrSecretExists = errors.New("secret already exists")

	// ErrInvalidName indicates the entry name is empty or would escape the store directory.
	ErrInvalidName = errors.New("invalid secret name")

	// ErrEmptySecret indicates an empty secret value was supplied.
	ErrEmptySecret = errors.New("secret cannot be empty")

	// ErrConfirmationMismatch indicates the secret and its confirmation differ.
	ErrConfirmationMismatch = errors.New("secrets do not match")
)

// ErrClipboardUnavailable indicates no system clipboard facility could be used.
var ErrClipboardUnavailable = errors.New("clipboard is not available")
