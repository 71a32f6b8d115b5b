package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/kauri/internal/configs"
	"github.com/PolarWolf314/kauri/internal/pgp"
	"github.com/PolarWolf314/kauri/internal/workflows"
)

func TestInit_ResolvesKeyAndWritesConfig(t *testing.T) {
	te := setupTestEnvironment(t)
	storePath := filepath.Join(te.Home, "store")

	stdout, _, err := runKauri(t, "", "init", "alice@example.com", "--path", storePath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(stdout, "Store initialized at") {
		t.Errorf("Expected success message, got: %s", stdout)
	}
	if !strings.Contains(stdout, testFingerprint) {
		t.Errorf("Expected resolved fingerprint in output, got: %s", stdout)
	}

	info, err := os.Stat(storePath)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected store directory at %s", storePath)
	}

	cfg, err := configs.Load(te.Settings)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Store.Path != storePath {
		t.Errorf("Store path = %q, want %q", cfg.Store.Path, storePath)
	}
	if cfg.Key.ID != testFingerprint {
		t.Errorf("Key ID = %q, want %q", cfg.Key.ID, testFingerprint)
	}
	if cfg.Key.Requested != "alice@example.com" {
		t.Errorf("Requested key = %q, want alice@example.com", cfg.Key.Requested)
	}
}

func TestInit_DefaultStorePath(t *testing.T) {
	te := setupTestEnvironment(t)

	if _, _, err := runKauri(t, "", "init", "alice@example.com"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg, err := configs.Load(te.Settings)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Store.Path != te.Settings.DefaultStorePath {
		t.Errorf("Store path = %q, want %q", cfg.Store.Path, te.Settings.DefaultStorePath)
	}
	if _, err := os.Stat(te.Settings.DefaultStorePath); err != nil {
		t.Errorf("Expected default store directory to exist: %v", err)
	}
}

func TestInit_UnresolvedKeyIsKeptLiterally(t *testing.T) {
	te := setupTestEnvironment(t)

	stdout, _, err := runKauri(t, "", "init", "nobody@example.com", "-p", filepath.Join(te.Home, "store"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Could not resolve") {
		t.Errorf("Expected resolution warning, got: %s", stdout)
	}

	cfg, err := configs.Load(te.Settings)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Key.ID != "nobody@example.com" {
		t.Errorf("Key ID = %q, want literal identifier", cfg.Key.ID)
	}
}

func TestInit_ReinitializeReplacesConfig(t *testing.T) {
	te := setupTestEnvironment(t)
	initializeStore(t, te)

	otherStore := filepath.Join(te.Home, "other")
	stdout, _, err := runKauri(t, "", "init", "bob@example.com", "--path", otherStore)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Previous configuration was replaced") {
		t.Errorf("Expected reinitialize hint, got: %s", stdout)
	}

	cfg, err := configs.Load(te.Settings)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Store.Path != otherStore || cfg.Key.ID != "bob@example.com" {
		t.Errorf("Config not replaced: %+v", cfg)
	}
}

func TestInit_PathIsAFile(t *testing.T) {
	te := setupTestEnvironment(t)
	filePath := filepath.Join(te.Home, "not-a-dir")
	if err := os.WriteFile(filePath, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	stdout, stderr, err := runKauri(t, "", "init", "alice@example.com", "--path", filePath)
	if err == nil {
		t.Fatal("Expected error when store path is a file")
	}
	if !strings.Contains(stderr, "not a directory") {
		t.Errorf("Expected failure on stderr, got: %q", stderr)
	}
	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got: %q", stdout)
	}
	if n := strings.Count(stderr, "not a directory"); n != 1 {
		t.Errorf("Failure printed %d times, want 1", n)
	}
	if configs.Exists(te.Settings) {
		t.Error("Config should not be written when init fails")
	}
}

func TestInit_RequiresKeyArgument(t *testing.T) {
	setupTestEnvironment(t)

	_, stderr, err := runKauri(t, "", "init")
	if err == nil {
		t.Fatal("Expected error without a key id")
	}
	if !strings.Contains(stderr, "accepts 1 arg") {
		t.Errorf("Expected argument error on stderr, got: %s", stderr)
	}
}

func TestInit_GPGBinaryFromEnvironment(t *testing.T) {
	te := setupTestEnvironment(t)

	environment = func() (configs.Environment, error) {
		return configs.Environment{Home: te.Home, GPGBinary: "/opt/gnupg/bin/gpg2"}, nil
	}
	var binary string
	override := depsOverride
	depsOverride = func(d *workflows.Deps) {
		if g, ok := d.Crypter.(*pgp.GPG); ok {
			binary = g.Binary
		}
		override(d)
	}

	if _, _, err := runKauri(t, "", "init", "alice@example.com"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if binary != "/opt/gnupg/bin/gpg2" {
		t.Errorf("gpg binary = %q, want /opt/gnupg/bin/gpg2", binary)
	}
}
