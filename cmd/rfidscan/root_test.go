package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/metalagman/rfidscan"
	"github.com/rs/zerolog"
)

type stubScanner struct {
	resp  rfidscan.Response
	err   error
	calls []rfidscan.ScanRequest
}

func (s *stubScanner) Scan(_ context.Context, req rfidscan.ScanRequest) (rfidscan.Response, error) {
	s.calls = append(s.calls, req)

	return s.resp, s.err
}

func testOptions(s rfidscan.Scanner) *rootOptions {
	return &rootOptions{
		log: zerolog.Nop(),
		newScanner: func(zerolog.Logger) (rfidscan.Scanner, error) {
			return s, nil
		},
	}
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd == nil {
		t.Fatal("newRootCmd() returned nil")
	}

	if cmd.Use != "rfidscan" {
		t.Errorf("expected use 'rfidscan', got '%s'", cmd.Use)
	}

	subCommands := []string{"form", "scan", "window", "stub", "quickstart"}
	for _, sub := range subCommands {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == sub {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %s not found", sub)
		}
	}
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"quickstart", "--log-level", "loud"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "parse log level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

func TestQuickstartCmd(t *testing.T) {
	var b bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"quickstart"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("quickstart failed: %v", err)
	}

	if !strings.Contains(b.String(), rfidscan.Endpoint) {
		t.Errorf("expected quickstart to mention the endpoint, got %q", b.String())
	}
}
