package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Debounce() != DefaultDebounce {
		t.Errorf("Debounce() = %v, want %v", cfg.Debounce(), DefaultDebounce)
	}
	if cfg.SectionCap != DefaultSectionCap {
		t.Errorf("SectionCap = %d, want %d", cfg.SectionCap, DefaultSectionCap)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "data_dir = \"/tmp/fieldops-test\"\ndebounce_ms = 300\nrecent_limit = 10\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DataDir != "/tmp/fieldops-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Debounce() != 300*time.Millisecond {
		t.Errorf("Debounce() = %v, want 300ms", cfg.Debounce())
	}
	if cfg.RecentLimit != 10 {
		t.Errorf("RecentLimit = %d, want 10", cfg.RecentLimit)
	}
	// Unset fields fall back to defaults.
	if cfg.SectionCap != DefaultSectionCap {
		t.Errorf("SectionCap = %d, want default %d", cfg.SectionCap, DefaultSectionCap)
	}
}

func TestLoadBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("data_dir = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Error("empty data_dir should fail validation")
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}
