package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-review/books/config"
	"github.com/Astemirdum/book-review/books/internal/handler"
	"github.com/Astemirdum/book-review/books/internal/repository"
	"github.com/Astemirdum/book-review/books/internal/service"
	"github.com/Astemirdum/book-review/books/internal/service/googlebooks"
	"github.com/Astemirdum/book-review/books/migrations"
	"github.com/Astemirdum/book-review/pkg/logger"
	"github.com/Astemirdum/book-review/pkg/postgres"
	"github.com/Astemirdum/book-review/pkg/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "books")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init: %w", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo: %w", err)
	}
	svc := service.NewService(repo, googlebooks.New(cfg.GoogleBooks, log), log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
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
