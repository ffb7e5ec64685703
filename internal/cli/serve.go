package cli

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cyphera/cyphera-pitch/internal/helpers"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(o *options) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site and JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := server.ConfigFromEnv(ctx, o.stage)
			cfg.ContentDir = strings.TrimSpace(o.contentDir)
			cfg.Watch = o.stage == helpers.StageLocal && cfg.ContentDir != ""
			if o.locale != "" {
				l, err := o.selectedLocale()
				if err != nil {
					return err
				}
				cfg.DefaultLocale = l
			}

			s, err := server.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			return listenAndServe(ctx, &http.Server{
				Addr:              fmt.Sprintf(":%s", port),
				Handler:           s.Router,
				ReadHeaderTimeout: 20 * time.Second,
			})
		},
	}

	cmd.Flags().StringVar(&port, "port", helpers.GetEnvWithDefault("PORT", "8000"), "listen port")
	return cmd
}

// listenAndServe runs srv until ctx is done, then shuts it down gracefully.
func listenAndServe(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	<-errCh
	logger.Info("Server exiting")
	return nil
}
