// ABOUTME: Tests for ironlog configuration management.
// ABOUTME: Covers load, save, defaults, remote selection, and path expansion.
package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetRemoteDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetRemote(); got != "charm" {
		t.Errorf("GetRemote() = %q, want %q", got, "charm")
	}
}

func TestGetRemoteExplicit(t *testing.T) {
	cfg := &Config{Remote: "sqlite"}
	if got := cfg.GetRemote(); got != "sqlite" {
		t.Errorf("GetRemote() = %q, want %q", got, "sqlite")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/ironlog-test"}
	if got := cfg.GetDataDir(); got != "/tmp/ironlog-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/ironlog-test")
	}
}

func TestGetDebounceDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDebounce(); got != 400*time.Millisecond {
		t.Errorf("GetDebounce() = %v, want 400ms", got)
	}
}

func TestGetDebounceExplicit(t *testing.T) {
	cfg := &Config{DebounceMillis: 50}
	if got := cfg.GetDebounce(); got != 50*time.Millisecond {
		t.Errorf("GetDebounce() = %v, want 50ms", got)
	}
}

func TestGetSweepIntervalDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetSweepInterval(); got != 30*time.Second {
		t.Errorf("GetSweepInterval() = %v, want 30s", got)
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/ironlog")
	want := filepath.Join(home, "data/ironlog")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/ironlog\") = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.Remote != "" || cfg.DataDir != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		Remote:         "sqlite",
		DataDir:        "/tmp/ironlog-data",
		DebounceMillis: 250,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Remote != "sqlite" {
		t.Errorf("Remote = %q, want %q", loaded.Remote, "sqlite")
	}
	if loaded.DataDir != "/tmp/ironlog-data" {
		t.Errorf("DataDir = %q, want %q", loaded.DataDir, "/tmp/ironlog-data")
	}
	if loaded.DebounceMillis != 250 {
		t.Errorf("DebounceMillis = %d, want 250", loaded.DebounceMillis)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "ironlog")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "ironlog", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenRemoteSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "records.db")
	cfg := &Config{Remote: "sqlite", RemoteDBPath: dbPath}

	svc, err := cfg.OpenRemote()
	if err != nil {
		t.Fatalf("OpenRemote() for sqlite failed: %v", err)
	}
	if svc == nil {
		t.Fatal("Expected non-nil service")
	}
	if c, ok := svc.(io.Closer); ok {
		defer c.Close()
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected records.db to be created")
	}
}

func TestOpenRemoteOff(t *testing.T) {
	cfg := &Config{Remote: "off"}
	svc, err := cfg.OpenRemote()
	if err != nil {
		t.Fatalf("OpenRemote() for off failed: %v", err)
	}
	if svc != nil {
		t.Error("Expected nil service when remote is off")
	}
}

func TestOpenRemoteInvalid(t *testing.T) {
	cfg := &Config{Remote: "carrier-pigeon"}
	if _, err := cfg.OpenRemote(); err == nil {
		t.Error("Expected error for unknown remote backend")
	}
}
