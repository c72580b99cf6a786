package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/YusovID/skillswap/internal/auth"
	"github.com/YusovID/skillswap/internal/cache"
	"github.com/YusovID/skillswap/internal/config"
	"github.com/YusovID/skillswap/internal/repository/postgres"
	"github.com/YusovID/skillswap/internal/service"
	myhttp "github.com/YusovID/skillswap/internal/transport/http"
	"github.com/YusovID/skillswap/pkg/logger/sl"
	"github.com/YusovID/skillswap/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting skillswap", slog.String("env", cfg.Env))

	db, err := postgres.NewDB(cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("db close failed", sl.Err(err))
		}
	}()

	checks := map[string]myhttp.Pinger{"postgres": db}

	var categories cache.CategoryCache = cache.Noop{}

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to init redis: %w", err)
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("redis close failed", sl.Err(err))
			}
		}()

		categories = cache.NewRedisCategoryCache(rdb, cfg.Redis.CategoriesTTL)
		checks["redis"] = myhttp.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	} else {
		log.Warn("redis address not configured, category cache disabled")
	}

	hasher, err := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to init password hasher: %w", err)
	}
	tokens := auth.NewTokenManager(cfg.Auth)

	userRepo := postgres.NewUserRepository(db.DB(), log)
	skillRepo := postgres.NewSkillRepository(db.DB(), log)
	swapRepo := postgres.NewSwapRepository(db.DB(), log)
	feedbackRepo := postgres.NewFeedbackRepository(db.DB(), log)

	srv := myhttp.NewServer(log, myhttp.Services{
		Users:    service.NewUserService(log, userRepo, hasher, tokens, categories),
		Skills:   service.NewSkillService(log, skillRepo, categories),
		Swaps:    service.NewSwapService(db.DB(), log, swapRepo, skillRepo),
		Feedback: service.NewFeedbackService(db.DB(), log, feedbackRepo, swapRepo, userRepo),
	}, tokens, checks)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	log.Info("server stopped")

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}
