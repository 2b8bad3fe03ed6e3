package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"component-linker/internal/linkage/candidates"
	"component-linker/internal/metrics"
	serverhttp "component-linker/server/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the linkage HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cands, fromFile, err := candidates.Load(cfg.CandidatesFile)
	if err != nil {
		return err
	}

	r := serverhttp.NewRouter(cfg, logger, metrics.New(), cands)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().
		Str("addr", cfg.Addr()).
		Int("candidates", len(cands)).
		Bool("candidates_from_file", fromFile).
		Msg("server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error().Err(err).Msg("listen")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("server shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return err
	}
	logger.Info().Msg("bye")
	return nil
}
