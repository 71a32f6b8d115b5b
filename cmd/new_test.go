package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/kauri/internal/pgp/pgptest"
)

func TestNew_StoresEncryptedSecret(t *testing.T) {
	te := setupTestEnvironment(t)
	storePath := initializeStore(t, te)

	stdout, stderr, err := runKauri(t, "hunter2\nhunter2\n", "new", "mail")
	if err != nil {
		t.Fatalf("Unexpected error: %v\nstderr: %s", err, stderr)
	}

	if !strings.Contains(stderr, "Enter secret for mail: ") || !strings.Contains(stderr, "Retype secret for mail: ") {
		t.Errorf("Expected both prompts on stderr, got: %s", stderr)
	}
	if !strings.Contains(stdout, "Saved") {
		t.Errorf("Expected saved message, got: %s", stdout)
	}

	data, err := os.ReadFile(filepath.Join(storePath, "mail.gpg"))
	if err != nil {
		t.Fatalf("Expected encrypted file: %v", err)
	}
	if got := pgptest.KeyOf(data); got != testFingerprint {
		t.Errorf("Encrypted for %q, want %q", got, testFingerprint)
	}
}

func TestNew_NestedName(t *testing.T) {
	te := setupTestEnvironment(t)
	storePath := initializeStore(t, te)

	addSecret(t, "web/github", "s3cret")

	if _, err := os.Stat(filepath.Join(storePath, "web", "github.gpg")); err != nil {
		t.Errorf("Expected nested secret file: %v", err)
	}
}

func TestNew_ConfirmationMismatch(t *testing.T) {
	te := setupTestEnvironment(t)
	storePath := initializeStore(t, te)

	stdout, stderr, err := runKauri(t, "hunter2\nhunter3\n", "new", "mail")
	if err == nil {
		t.Fatal("Expected error on mismatch")
	}
	if !strings.Contains(stderr, "do not match") {
		t.Errorf("Expected mismatch message on stderr, got: %s", stderr)
	}
	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got: %q", stdout)
	}
	if _, statErr := os.Stat(filepath.Join(storePath, "mail.gpg")); !os.IsNotExist(statErr) {
		t.Error("Nothing should be written on mismatch")
	}
	if te.Crypter.Encrypted != 0 {
		t.Errorf("Crypter called %d times, want 0", te.Crypter.Encrypted)
	}
}

func TestNew_BeforeInit(t *testing.T) {
	te := setupTestEnvironment(t)

	_, stderr, err := runKauri(t, "hunter2\nhunter2\n", "new", "mail")
	if err == nil {
		t.Fatal("Expected error before init")
	}
	if !strings.Contains(stderr, "not been initialized") {
		t.Errorf("Expected not-initialized message, got: %s", stderr)
	}
	if strings.Contains(stderr, "Enter secret") {
		t.Error("Should fail before prompting")
	}
	if te.Crypter.Encrypted != 0 {
		t.Error("Crypter should not be called before init")
	}
}

func TestNew_ExistingRequiresForce(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)
	addSecret(t, "mail", "first")

	_, stderr, err := runKauri(t, "second\nsecond\n", "new", "mail")
	if err == nil {
		t.Fatal("Expected error for existing secret")
	}
	if !strings.Contains(stderr, "--force") {
		t.Errorf("Expected --force hint, got: %s", stderr)
	}

	stdout, _, err := runKauri(t, "second\nsecond\n", "new", "mail", "--force")
	if err != nil {
		t.Fatalf("Unexpected error with --force: %v", err)
	}
	if !strings.Contains(stdout, "Replaced") {
		t.Errorf("Expected replaced message, got: %s", stdout)
	}

	stdout, _, err = runKauri(t, "", "read", "mail")
	if err != nil {
		t.Fatalf("Unexpected read error: %v", err)
	}
	if stdout != "second\n" {
		t.Errorf("read = %q, want %q", stdout, "second\n")
	}
}

func TestNew_InvalidName(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)

	for _, name := range []string{"../escape", "/abs", ".hidden"} {
		_, _, err := runKauri(t, "x\nx\n", "new", name)
		if err == nil {
			t.Errorf("Expected error for name %q", name)
		}
	}
	if te.Crypter.Encrypted != 0 {
		t.Error("Crypter should not be called for invalid names")
	}
}

func TestNew_EmptySecret(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)

	_, _, err := runKauri(t, "\n\n", "new", "mail")
	if err == nil {
		t.Fatal("Expected error for empty secret")
	}
}
