//go:build !gui

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoGUI = errors.New("rfidscan was built without GUI support; rebuild with -tags gui")

func newWindowCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the scan form in a desktop window (requires -tags gui)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return errNoGUI
		},
	}
}
