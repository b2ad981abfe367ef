package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/metalagman/rfidscan"
	"github.com/spf13/cobra"
)

func newFormCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Fill the scan form interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			form, err := opts.scanForm(terminalPresenter{w: out})
			if err != nil {
				return err
			}

			return runForm(cmd.Context(), cmd.InOrStdin(), out, form)
		},
	}
}

// runForm renders the form and handles one activation per filled form
// until the input is exhausted or ctx is cancelled.
func runForm(ctx context.Context, in io.Reader, out io.Writer, form *rfidscan.ScanForm) error {
	lines, readErr := readLines(ctx, in)

	prompt := func(label string) (string, bool) {
		_, _ = fmt.Fprint(out, label, " ")

		select {
		case <-ctx.Done():
			return "", false
		case line, ok := <-lines:
			return line, ok
		}
	}

	_, _ = fmt.Fprintln(out, "RFID Scan Simulator (Ctrl+D to quit)")

	for ctx.Err() == nil {
		rfidID, ok := prompt(rfidscan.LabelRFIDID)
		if !ok {
			break
		}

		deviceID, ok := prompt(rfidscan.LabelDeviceID)
		if !ok {
			break
		}

		if _, ok := prompt(fmt.Sprintf("[ %s ] press Enter", rfidscan.ActionScan)); !ok {
			break
		}

		if _, err := form.Trigger(ctx, rfidID, deviceID); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out)

	if ctx.Err() != nil {
		return nil
	}

	if err := <-readErr; err != nil {
		return fmt.Errorf("read form input: %w", err)
	}

	return nil
}

// readLines feeds input lines to the returned channel. The error channel
// receives the scanner result before the line channel is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)

		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}

		errCh <- sc.Err()
	}()

	return lines, errCh
}
