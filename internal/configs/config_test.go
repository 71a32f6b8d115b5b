package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/kauri/internal/errors"
)

func testSettings(t *testing.T) *Settings {
	t.Helper()
	home := t.TempDir()
	settings, err := ResolveSettings(Environment{Home: home})
	if err != nil {
		t.Fatalf("ResolveSettings failed: %v", err)
	}
	return settings
}

func TestSaveAndLoadConfig(t *testing.T) {
	settings := testSettings(t)

	config := &Config{
		Store: StoreConfig{Path: "/tmp/store"},
		Key: KeyConfig{
			ID:        "0123456789ABCDEF0123456789ABCDEF01234567",
			Requested: "alice@example.com",
		},
	}

	if err := Save(settings, config); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(settings)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *config {
		t.Errorf("Expected %+v, got %+v", *config, *loaded)
	}
}

func TestSaveConfigLastWriteWins(t *testing.T) {
	settings := testSettings(t)

	first := &Config{Store: StoreConfig{Path: "/a"}, Key: KeyConfig{ID: "one"}}
	second := &Config{Store: StoreConfig{Path: "/b"}, Key: KeyConfig{ID: "two"}}

	if err := Save(settings, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Save(settings, second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(settings)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *second {
		t.Errorf("Expected %+v, got %+v", *second, *loaded)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	settings := testSettings(t)

	_, err := Load(settings)
	if !errors.Is(err, kerrors.ErrNotInitialized) {
		t.Fatalf("Expected ErrNotInitialized, got %v", err)
	}

	if _, statErr := os.Stat(settings.ConfigDir); !os.IsNotExist(statErr) {
		t.Errorf("Load should not create the config directory")
	}
}

func TestLoadConfigCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Unparsable", "[store\npath = "},
		{"MissingStorePath", "[key]\nid = \"ABC\"\n"},
		{"MissingKeyID", "[store]\npath = \"/tmp/store\"\n"},
		{"Empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := testSettings(t)
			if err := os.MkdirAll(settings.ConfigDir, 0700); err != nil {
				t.Fatalf("Failed to create config dir: %v", err)
			}
			if err := os.WriteFile(settings.ConfigPath, []byte(tc.content), 0600); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			_, err := Load(settings)
			if !errors.Is(err, kerrors.ErrConfigCorrupt) {
				t.Errorf("Expected ErrConfigCorrupt, got %v", err)
			}
		})
	}
}

func TestExists(t *testing.T) {
	settings := testSettings(t)

	if Exists(settings) {
		t.Fatal("Exists should be false before Save")
	}

	if err := Save(settings, &Config{Store: StoreConfig{Path: "/s"}, Key: KeyConfig{ID: "k"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !Exists(settings) {
		t.Error("Exists should be true after Save")
	}
	if filepath.Base(settings.ConfigPath) != "config.toml" {
		t.Errorf("Unexpected config file name %q", filepath.Base(settings.ConfigPath))
	}
}
