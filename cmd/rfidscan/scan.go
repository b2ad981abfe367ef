package main

import (
	"os"

	"github.com/metalagman/rfidscan"
	"github.com/spf13/cobra"
)

var exitFn = os.Exit

type scanOptions struct {
	rfidID   string
	deviceID string
}

func addScanFlags(cmd *cobra.Command, opts *scanOptions) {
	cmd.Flags().StringVar(&opts.rfidID, "rfid-id", "", "RFID tag identifier")
	cmd.Flags().StringVar(&opts.deviceID, "device-id", "", "scanning device identifier")
}

func newScanCmd(root *rootOptions) *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Submit a single scan and print the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := root.scanForm(terminalPresenter{w: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			out, err := form.Trigger(cmd.Context(), opts.rfidID, opts.deviceID)
			if err != nil {
				return err
			}

			if out.Kind != rfidscan.SeverityInformation {
				exitFn(1)
			}

			return nil
		},
	}

	addScanFlags(cmd, opts)

	return cmd
}
