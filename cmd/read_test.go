package cmd

import (
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/kauri/internal/errors"
)

func TestRead_PrintsSecretOnly(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)
	addSecret(t, "mail", "hunter2")

	stdout, stderr, err := runKauri(t, "", "read", "mail")
	if err != nil {
		t.Fatalf("Unexpected error: %v\nstderr: %s", err, stderr)
	}
	if stdout != "hunter2\n" {
		t.Errorf("stdout = %q, want %q", stdout, "hunter2\n")
	}
	if te.Clipboard.Copies != 0 {
		t.Error("Clipboard should not be touched without --copy")
	}
}

func TestRead_Copy(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)
	addSecret(t, "web/github", "s3cret")

	stdout, _, err := runKauri(t, "", "read", "web/github", "--copy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if te.Clipboard.Text != "s3cret" {
		t.Errorf("Clipboard = %q, want %q", te.Clipboard.Text, "s3cret")
	}
	if strings.Contains(stdout, "s3cret") {
		t.Errorf("Secret must not be printed with --copy, got: %s", stdout)
	}
	if !strings.Contains(stdout, "Copied") {
		t.Errorf("Expected copied message, got: %s", stdout)
	}
}

func TestRead_Missing(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)

	stdout, stderr, err := runKauri(t, "", "read", "nope")
	if !errors.Is(err, kerrors.ErrSecretNotFound) {
		t.Fatalf("Expected ErrSecretNotFound, got: %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected no stdout, got: %q", stdout)
	}
	if !strings.Contains(stderr, "secret not found") {
		t.Errorf("Expected not-found message, got: %s", stderr)
	}
}

func TestRead_BeforeInit(t *testing.T) {
	setupTestEnvironment(t)

	_, stderr, err := runKauri(t, "", "read", "mail")
	if !errors.Is(err, kerrors.ErrNotInitialized) {
		t.Fatalf("Expected ErrNotInitialized, got: %v", err)
	}
	if !strings.Contains(stderr, "kauri init") {
		t.Errorf("Expected init hint, got: %s", stderr)
	}
}

func TestRead_DecryptFailure(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)
	addSecret(t, "mail", "hunter2")

	te.Crypter.DecryptErr = kerrors.ErrDecryptFailed
	stdout, _, err := runKauri(t, "", "read", "mail")
	if !errors.Is(err, kerrors.ErrDecryptFailed) {
		t.Fatalf("Expected ErrDecryptFailed, got: %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected no stdout, got: %q", stdout)
	}
}

func TestRead_ErrorPrintedOnce(t *testing.T) {
	setupTestEnvironment(t)

	_, stderr, _ := runKauri(t, "", "read", "mail")
	if n := strings.Count(stderr, "not been initialized"); n != 1 {
		t.Errorf("Error printed %d times, want 1:\n%s", n, stderr)
	}
}

func TestRead_VerboseKeepsStdoutClean(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)
	addSecret(t, "mail", "hunter2")

	stdout, stderr, err := runKauri(t, "", "read", "mail", "-v", "-d")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stdout != "hunter2\n" {
		t.Errorf("stdout = %q, want %q", stdout, "hunter2\n")
	}
	if !strings.Contains(stderr, "Starting read command") {
		t.Errorf("Expected log lines on stderr, got: %q", stderr)
	}
}

func TestRead_DebugLogsFailure(t *testing.T) {
	setupTestEnvironment(t)

	_, stderr, err := runKauri(t, "", "read", "mail", "--debug")
	if err == nil {
		t.Fatal("Expected error before init")
	}
	if !strings.Contains(stderr, "[error]") {
		t.Errorf("Expected debug error line on stderr, got: %q", stderr)
	}
}
