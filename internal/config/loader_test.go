package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWritesDefaultConfigWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9090\"\ndatabase_path: /tmp/file.db\nseed_heroes: false\nshutdown_timeout: 2s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("HEROES_DATABASE_PATH", "/tmp/env.db")

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("file should override default addr, got %q", cfg.Addr)
	}
	if cfg.DatabasePath != "/tmp/env.db" {
		t.Errorf("env should override file database_path, got %q", cfg.DatabasePath)
	}
	if cfg.SeedHeroes {
		t.Errorf("file should disable seeding")
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Errorf("expected 2s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.APIURL != Default().APIURL {
		t.Errorf("unset keys keep defaults, got api_url %q", cfg.APIURL)
	}
}

func TestUpdateFromKeepsZeroValues(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":1234", APIURL: "http://example.test"})

	if cfg.Addr != ":1234" || cfg.APIURL != "http://example.test" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.DatabasePath != Default().DatabasePath {
		t.Fatalf("zero override must not clear database path: %+v", cfg)
	}
}

func TestLoadWithoutDefaultFileLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("HEROES_API_URL", "http://heroes.test:9000")

	cfg, resolved, err := Load(nil, path, WithoutDefaultFile())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("config file must not be created, stat err: %v", err)
	}
	if cfg.APIURL != "http://heroes.test:9000" {
		t.Errorf("env should still apply without a file, got api_url %q", cfg.APIURL)
	}
	if cfg.DatabasePath != Default().DatabasePath {
		t.Errorf("unset keys keep defaults, got database_path %q", cfg.DatabasePath)
	}
}

func TestLoadWithoutDefaultFileReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: http://from-file.test\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load(nil, path, WithoutDefaultFile())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://from-file.test" {
		t.Fatalf("file should set api_url, got %q", cfg.APIURL)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := Load(nil, path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
