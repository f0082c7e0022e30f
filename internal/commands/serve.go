package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

type serve struct {
	app
	srv *http.Server
}

func Serve() *cobra.Command {
	var s serve

	cmd := cobra.Command{
		Use:   "serve",
		Short: "Start the CRM API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.serve(cmd.Context())
		},
	}

	s.Flags(&cmd)

	return &cmd
}

func (s *serve) serve(ctx context.Context) error {
	if err := s.load(); err != nil {
		return err
	}
	if err := s.open(); err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)

	rt, _, err := wire(ctx, s.cfg, s.db)
	if err != nil {
		return err
	}

	s.srv = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           rt.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})

	go func() {
		defer close(done)
		slog.Info("server starting", "addr", s.cfg.Addr)
		if serr := s.srv.ListenAndServe(); !errors.Is(serr, http.ErrServerClosed) {
			err = serr
		}
	}()

	select {
	case <-done:
		return err
	case sig := <-sigCh:
		slog.Warn("caught signal", "sig", sig)
		return s.gracefulStop()
	case <-ctx.Done():
		slog.Warn("application context done", "err", ctx.Err())
		return s.gracefulStop()
	}
}

func (s *serve) gracefulStop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		slog.Warn("timed out waiting to shutdown", "err", err)
		return err
	}

	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("shutdown gracefully")
	return nil
}
