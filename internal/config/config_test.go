package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGINS",
		"ASSISTANT_THINK_DELAY_MS", "ASSISTANT_SEED", "ASSISTANT_PLAYBOOK",
		"LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("default addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Fatalf("default origins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Assistant.ThinkDelay != 1200*time.Millisecond {
		t.Fatalf("default think delay = %s", cfg.Assistant.ThinkDelay)
	}
	if cfg.Assistant.Seed != 0 {
		t.Fatalf("default seed = %d", cfg.Assistant.Seed)
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Fatalf("default log level = %v", cfg.Log.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("ALLOWED_ORIGINS", "https://app.hotgigs.test, https://staging.hotgigs.test")
	t.Setenv("ASSISTANT_THINK_DELAY_MS", "250")
	t.Setenv("ASSISTANT_SEED", "42")
	t.Setenv("ASSISTANT_PLAYBOOK", "/etc/careerassist/playbook.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("origins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Assistant.ThinkDelay != 250*time.Millisecond {
		t.Fatalf("think delay = %s", cfg.Assistant.ThinkDelay)
	}
	if cfg.Assistant.Seed != 42 {
		t.Fatalf("seed = %d", cfg.Assistant.Seed)
	}
	if cfg.Assistant.PlaybookPath != "/etc/careerassist/playbook.yaml" {
		t.Fatalf("playbook path = %q", cfg.Assistant.PlaybookPath)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Fatalf("log level = %v", cfg.Log.Level)
	}
}

func TestLoadBarePort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9191")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":9191" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"PORT", "80 80"},
		{"ASSISTANT_THINK_DELAY_MS", "soon"},
		{"ASSISTANT_THINK_DELAY_MS", "-5"},
		{"ASSISTANT_SEED", "not-a-number"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("assistant ready", "addr", ":8080")

	if !strings.Contains(stderr.String(), "assistant ready") {
		t.Fatalf("stderr output missing message: %q", stderr.String())
	}
	if !strings.Contains(file.String(), `"msg":"assistant ready"`) {
		t.Fatalf("file output not JSON: %q", file.String())
	}
}
