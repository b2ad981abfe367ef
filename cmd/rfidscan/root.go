package main

import (
	"github.com/metalagman/rfidscan"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	cfg      Config
	log      zerolog.Logger

	// newScanner is replaced in tests; nil means the real client.
	newScanner func(log zerolog.Logger) (rfidscan.Scanner, error)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "rfidscan",
		Short:         "Submit RFID scans to the attendance backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides RFIDSCAN_LOG_LEVEL)")

	root.AddCommand(newFormCmd(opts))
	root.AddCommand(newScanCmd(opts))
	root.AddCommand(newWindowCmd(opts))
	root.AddCommand(newStubCmd(opts))
	root.AddCommand(newQuickstartCmd())

	return root
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = o.logLevel
	}

	log, err := newLogger(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.log = log

	return nil
}

func (o *rootOptions) scanForm(p rfidscan.Presenter) (*rfidscan.ScanForm, error) {
	newScanner := o.newScanner
	if newScanner == nil {
		newScanner = defaultScanner
	}

	scanner, err := newScanner(o.log)
	if err != nil {
		return nil, err
	}

	return rfidscan.NewScanForm(scanner, p, o.log)
}

func defaultScanner(log zerolog.Logger) (rfidscan.Scanner, error) {
	return rfidscan.NewClient(rfidscan.WithLogger(log))
}
