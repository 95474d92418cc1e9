package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
addr: ":9090"
password: "secret"
gemini_api_key: "key-123"
storage_quota_bytes: 1048576
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.Password != "secret" {
		t.Errorf("expected password from file, got %q", cfg.Password)
	}
	if cfg.StorageQuota != 1048576 {
		t.Errorf("expected quota 1048576, got %d", cfg.StorageQuota)
	}
	// Unset fields keep their defaults.
	if cfg.DBPath != "logismart.sqlite3" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("addr: [unclosed"), 0o600)

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
