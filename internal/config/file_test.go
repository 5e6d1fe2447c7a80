package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TargetHours != 8 {
		t.Fatalf("TargetHours = %v, want 8", cfg.TargetHours)
	}
	if cfg.DefaultWorkspaceID != 0 {
		t.Fatalf("DefaultWorkspaceID = %d, want 0", cfg.DefaultWorkspaceID)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := &Config{TargetHours: 6.5, DefaultWorkspaceID: 42}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.TargetHours != want.TargetHours {
		t.Fatalf("TargetHours = %v, want %v", got.TargetHours, want.TargetHours)
	}
	if got.DefaultWorkspaceID != want.DefaultWorkspaceID {
		t.Fatalf("DefaultWorkspaceID = %d, want %d", got.DefaultWorkspaceID, want.DefaultWorkspaceID)
	}
}

func TestLoad_ZeroTargetHoursNormalized(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(appDir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(appDir, "config.json")
	if err := os.WriteFile(path, []byte(`{"default_workspace_id": 7}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TargetHours != 8 {
		t.Fatalf("TargetHours = %v, want 8", cfg.TargetHours)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(appDir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.json"), []byte("{"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatalf("Load() expected error for invalid JSON")
	}
}
