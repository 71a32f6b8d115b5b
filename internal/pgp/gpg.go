package pgp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	kerrors "github.com/PolarWolf314/kauri/internal/errors"
)

// DefaultBinary is used when no gpg executable is configured.
const DefaultBinary = "gpg"

// GPG implements Crypter and KeyResolver by running the gpg command.
type GPG struct {
	// Binary is the executable name or path.
	Binary string
}

// NewGPG returns a GPG running binary, or DefaultBinary when binary is empty.
func NewGPG(binary string) *GPG {
	if binary == "" {
		binary = DefaultBinary
	}
	return &GPG{Binary: binary}
}

// fingerprintPattern matches the fingerprint record that follows each
// primary key ("pub") record in --with-colons output.
var fingerprintPattern = regexp.MustCompile(`(?m)^pub:[^\n]*\nfpr:(?:[^:]*:){8}([0-9A-Fa-f]{32,64}):`)

// Encrypt pipes plaintext through gpg --encrypt for keyID.
func (g *GPG) Encrypt(ctx context.Context, plaintext []byte, keyID string) ([]byte, error) {
	out, err := g.run(ctx, plaintext,
		"--batch", "--yes", "--quiet",
		"--encrypt", "--recipient", keyID,
		"--output", "-",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrEncryptFailed, err)
	}
	return out, nil
}

// Decrypt pipes ciphertext through gpg --decrypt. --batch is left off so
// gpg-agent can ask for a passphrase.
func (g *GPG) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	out, err := g.run(ctx, ciphertext, "--yes", "--quiet", "--decrypt")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrDecryptFailed, err)
	}
	return out, nil
}

// ResolveKey looks id up in the public key ring and returns the
// fingerprint of the single primary key it names.
//
// Returns ErrKeyResolveFailed if gpg fails or id matches zero or several keys.
func (g *GPG) ResolveKey(ctx context.Context, id string) (string, error) {
	out, err := g.run(ctx, nil, "--batch", "--with-colons", "--list-keys", "--", id)
	if err != nil {
		if errors.Is(err, kerrors.ErrToolNotFound) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", kerrors.ErrKeyResolveFailed, err)
	}
	return ParseFingerprint(string(out))
}

// ParseFingerprint extracts the primary-key fingerprint from gpg
// --with-colons output.
func ParseFingerprint(listing string) (string, error) {
	matches := fingerprintPattern.FindAllStringSubmatch(listing, -1)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no matching key", kerrors.ErrKeyResolveFailed)
	case 1:
		return strings.ToUpper(matches[0][1]), nil
	default:
		return "", fmt.Errorf("%w: identifier matches %d keys", kerrors.ErrKeyResolveFailed, len(matches))
	}
}

// run executes gpg with args, feeding stdin and returning stdout.
func (g *GPG) run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	binary := g.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrToolNotFound, binary)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s exited %d: %s", binary, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("run %s: %w", binary, err)
	}

	return stdout.Bytes(), nil
}
