package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"RFIDSCAN_LOG_LEVEL", "RFIDSCAN_STUB_ADDR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level warn, got %q", cfg.LogLevel)
	}

	if cfg.StubAddr != "localhost:5000" {
		t.Errorf("expected default stub addr, got %q", cfg.StubAddr)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("RFIDSCAN_LOG_LEVEL", "debug")
	t.Setenv("RFIDSCAN_STUB_ADDR", "127.0.0.1:6000")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.LogLevel != "debug" || cfg.StubAddr != "127.0.0.1:6000" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer

	log, err := newLogger(" INFO ", &b)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}

	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level, got %s", log.GetLevel())
	}

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	if strings.Contains(b.String(), "hidden") || !strings.Contains(b.String(), "shown") {
		t.Errorf("unexpected log output %q", b.String())
	}

	if _, err := newLogger("nope", &b); err == nil {
		t.Error("expected error for unknown level")
	}
}
