// Package pgptest provides in-memory stand-ins for the pgp capabilities.
package pgptest

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	kerrors "github.com/PolarWolf314/kauri/internal/errors"
)

const header = "FAKE-PGP:"

// Crypter is a reversible fake. Ciphertext is "FAKE-PGP:<key>:<plaintext>".
type Crypter struct {
	mu sync.Mutex

	// EncryptErr and DecryptErr, when set, are returned instead of doing work.
	EncryptErr error
	DecryptErr error

	Encrypted int
	Decrypted int
}

func (c *Crypter) Encrypt(ctx context.Context, plaintext []byte, keyID string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.EncryptErr != nil {
		return nil, c.EncryptErr
	}
	c.Encrypted++

	out := make([]byte, 0, len(header)+len(keyID)+1+len(plaintext))
	out = append(out, header...)
	out = append(out, keyID...)
	out = append(out, ':')
	return append(out, plaintext...), nil
}

func (c *Crypter) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.DecryptErr != nil {
		return nil, c.DecryptErr
	}
	c.Decrypted++

	if !bytes.HasPrefix(ciphertext, []byte(header)) {
		return nil, fmt.Errorf("%w: not produced by fake crypter", kerrors.ErrDecryptFailed)
	}
	rest := ciphertext[len(header):]
	sep := bytes.IndexByte(rest, ':')
	if sep < 0 {
		return nil, fmt.Errorf("%w: missing key separator", kerrors.ErrDecryptFailed)
	}
	return append([]byte(nil), rest[sep+1:]...), nil
}

// KeyOf reports which key a fake ciphertext was addressed to.
func KeyOf(ciphertext []byte) string {
	rest := bytes.TrimPrefix(ciphertext, []byte(header))
	if sep := bytes.IndexByte(rest, ':'); sep >= 0 {
		return string(rest[:sep])
	}
	return ""
}

// Resolver resolves identifiers from a fixed map. Unknown identifiers fail
// with ErrKeyResolveFailed.
type Resolver struct {
	Keys map[string]string
}

func (r *Resolver) ResolveKey(ctx context.Context, id string) (string, error) {
	if fpr, ok := r.Keys[id]; ok {
		return fpr, nil
	}
	return "", fmt.Errorf("%w: %s", kerrors.ErrKeyResolveFailed, id)
}
