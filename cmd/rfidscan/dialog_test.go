package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/metalagman/rfidscan"
)

func TestTerminalPresenter(t *testing.T) {
	tests := []struct {
		name    string
		outcome rfidscan.Outcome
		header  string
	}{
		{
			name:    "information",
			outcome: rfidscan.Outcome{Kind: rfidscan.SeverityInformation, Title: "Success", Message: `Response: {"id":42}`},
			header:  "[information] Success",
		},
		{
			name:    "warning",
			outcome: rfidscan.Outcome{Kind: rfidscan.SeverityWarning, Title: "Input Error", Message: rfidscan.MessageMissingInput},
			header:  "[warning] Input Error",
		},
		{
			name:    "critical",
			outcome: rfidscan.Outcome{Kind: rfidscan.SeverityCritical, Title: "Request Failed", Message: "connection refused"},
			header:  "[critical] Request Failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := (terminalPresenter{w: &b}).Present(tt.outcome); err != nil {
				t.Fatalf("present: %v", err)
			}

			got := b.String()
			if !strings.Contains(got, tt.header) {
				t.Errorf("expected header %q in %q", tt.header, got)
			}
			if !strings.Contains(got, tt.outcome.Message) {
				t.Errorf("expected message %q in %q", tt.outcome.Message, got)
			}
		})
	}
}
