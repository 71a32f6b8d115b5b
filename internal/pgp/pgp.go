// Package pgp defines the capabilities kauri needs from a PGP tool and
// implements them by running gpg.
//
// Nothing in this package performs cryptography. Encryption, decryption,
// key lookup and trust decisions all belong to the external binary; the
// code here only builds argument lists and moves bytes between pipes.
package pgp

import "context"

// Crypter encrypts and decrypts secret payloads.
type Crypter interface {
	// Encrypt returns ciphertext for plaintext addressed to keyID.
	Encrypt(ctx context.Context, plaintext []byte, keyID string) ([]byte, error)

	// Decrypt returns the plaintext for ciphertext.
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// KeyResolver maps a user-supplied key identifier to a canonical one.
type KeyResolver interface {
	ResolveKey(ctx context.Context, id string) (string, error)
}
