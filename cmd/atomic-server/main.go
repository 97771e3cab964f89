package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kelvinhskim/atomic-chess/internal/config"
	"github.com/kelvinhskim/atomic-chess/internal/obslog"
	"github.com/kelvinhskim/atomic-chess/internal/render"
	"github.com/kelvinhskim/atomic-chess/internal/results"
	"github.com/kelvinhskim/atomic-chess/internal/server"
	"github.com/kelvinhskim/atomic-chess/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.Init(obslog.OptionsFromEnv()); err != nil {
		log.Fatalf("logger init error: %v", err)
	}

	var store session.Store
	if cfg.RedisURL != "" {
		rs, err := session.NewRedisStore(cfg.RedisURL, time.Duration(cfg.SessionTTLSec)*time.Second)
		if err != nil {
			log.Fatalf("redis store init error: %v", err)
		}
		defer rs.Close()
		store = rs
		obslog.L().Info("session_store", zap.String("kind", "redis"))
	} else {
		store = session.NewMemoryStore()
		obslog.L().Info("session_store", zap.String("kind", "memory"))
	}

	mgr := session.NewManager(store)
	if cfg.DatabaseURL != "" {
		repo, err := results.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("results repository init error: %v", err)
		}
		defer repo.Close()
		mgr.AttachRepository(repo)
		obslog.L().Info("results_repository", zap.String("kind", "postgres"))
	}

	srv := server.New(mgr, render.NewRenderer(), cfg.HistoryLimit)
	errCh := make(chan error, 1)
	go func() {
		obslog.L().Info("listening", zap.String("addr", cfg.ListenAddr))
		errCh <- srv.ListenAndServe(cfg.ListenAddr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		obslog.L().Info("shutting down", zap.String("signal", sig.String()))
		if err := srv.Shutdown(); err != nil {
			obslog.L().Error("shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			obslog.L().Fatal("server error", zap.Error(err))
		}
	}
}
