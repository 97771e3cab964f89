package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ATOMIC_CONFIG_FILE",
		"ATOMIC_LISTEN_ADDR",
		"ATOMIC_REDIS_URL",
		"ATOMIC_DATABASE_URL",
		"ATOMIC_SESSION_TTL",
		"ATOMIC_HISTORY_LIMIT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.SessionTTLSec != 86400 || cfg.HistoryLimit != 10 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "atomic.yaml")
	data := "listen_addr: \":9999\"\nredis_url: \"redis://file:6379/0\"\nsession_ttl_sec: 60\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ATOMIC_CONFIG_FILE", path)
	t.Setenv("ATOMIC_REDIS_URL", "redis://env:6379/1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9999" {
		t.Fatalf("file value dropped: ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.RedisURL != "redis://env:6379/1" {
		t.Fatalf("env did not win: RedisURL = %q", cfg.RedisURL)
	}
	if cfg.SessionTTLSec != 60 {
		t.Fatalf("SessionTTLSec = %d", cfg.SessionTTLSec)
	}
}

func TestLoadBadFile(t *testing.T) {
	t.Setenv("ATOMIC_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
