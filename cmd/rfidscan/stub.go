package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/metalagman/rfidscan/internal/stubserver"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

type stubOptions struct {
	addr   string
	roster string
}

func newStubCmd(root *rootOptions) *cobra.Command {
	opts := &stubOptions{}
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Run an in-memory stand-in for the attendance backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				opts.addr = root.cfg.StubAddr
			}

			roster := stubserver.DemoRoster()
			if opts.roster != "" {
				r, err := stubserver.LoadRoster(opts.roster)
				if err != nil {
					return err
				}

				roster = r
			}

			ln, err := net.Listen("tcp", opts.addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", opts.addr, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stub backend listening on http://%s%s\n", ln.Addr(), stubserver.ScanPath)

			srv := stubserver.New(roster, stubserver.WithLogger(root.log))

			return serveStub(cmd.Context(), ln, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides RFIDSCAN_STUB_ADDR)")
	cmd.Flags().StringVar(&opts.roster, "roster", "", "path to a JSON roster of devices and students")

	return cmd
}

func serveStub(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
