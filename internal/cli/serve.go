// internal/cli/serve.go
package chatfreq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mwiater/chatfreq/internal/api"
	"github.com/mwiater/chatfreq/internal/logging"
	"github.com/spf13/cobra"
)

// newServeCmd implements 'serve', the HTTP upload service.
func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload, ranking and search API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init(a.cfg.LogFile, true); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			if addr == "" {
				addr = a.cfg.Addr()
			}

			analyzer, err := a.cfg.NewAnalyzer()
			if err != nil {
				return err
			}
			handler := api.NewHandler(analyzer, a.cfg.UploadLimit())

			httpServer := &http.Server{
				Addr:         addr,
				Handler:      api.NewServer(handler),
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  120 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serverErrChan := make(chan error, 1)
			go func() {
				logging.LogEvent("[HTTP] Listening on %s", addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErrChan <- err
				}
				close(serverErrChan)
			}()

			select {
			case err := <-serverErrChan:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logging.LogEvent("[HTTP] Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to listenAddr from config)")
	return cmd
}
