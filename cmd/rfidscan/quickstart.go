package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			printQuickstart(cmd.OutOrStdout())
		},
	}
}

func printQuickstart(w io.Writer) {
	_, _ = fmt.Fprintln(w, `Quickstart Guide for rfidscan

Every scan is posted to http://localhost:5000/api/rfid-scans/scan.

1. Local backend (stub)
   Start an in-memory stand-in for the attendance backend.

   rfidscan stub
   rfidscan stub --roster=roster.json

2. Single scan
   Submit one scan; exits non-zero unless the server accepted it.

   rfidscan scan --rfid-id=04A2B3C4 --device-id=gate-1

3. Terminal form
   Enter RFID ID and Device ID, press Enter on [ Scan ]. Ctrl+D quits.

   rfidscan form

4. Desktop window
   Requires a build with the gui tag.

   go build -tags gui ./cmd/rfidscan
   rfidscan window

Logging goes to stderr. Set RFIDSCAN_LOG_LEVEL or --log-level=debug.`)
}
