package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-review/frontend/config"
	"github.com/Astemirdum/book-review/frontend/internal/handler"
	"github.com/Astemirdum/book-review/frontend/internal/service/backend"
	"github.com/Astemirdum/book-review/frontend/internal/view"
	"github.com/Astemirdum/book-review/pkg/logger"
	"github.com/Astemirdum/book-review/pkg/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "frontend")
	defer log.Sync() //nolint:errcheck

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	h := handler.New(backend.NewService(log, cfg.Backend), renderer, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
			zap.String("backend", cfg.Backend.URL))
		return srv.Run()
	})
	gg.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := gg.Wait(); err != nil {
		log.Error("server", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
