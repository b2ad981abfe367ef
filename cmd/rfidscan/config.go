package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/rs/zerolog"
)

// Config holds the environment settings. The scan endpoint is not one of them.
type Config struct {
	LogLevel string `env:"RFIDSCAN_LOG_LEVEL,default=warn"`
	StubAddr string `env:"RFIDSCAN_STUB_ADDR,default=localhost:5000"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
