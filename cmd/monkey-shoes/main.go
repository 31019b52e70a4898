package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kirsten0429/monkey-shoes/internal/config"
	"github.com/kirsten0429/monkey-shoes/internal/env"
	"github.com/kirsten0429/monkey-shoes/internal/repo"
	"github.com/kirsten0429/monkey-shoes/internal/server"
	"github.com/kirsten0429/monkey-shoes/internal/usecase"
)

func main() {
	env.Load(".env", ".env.local")
	envDefaults := config.EnvDefaults()

	appEnv := flag.String("env", envDefaults.Env, "environment name")
	addr := flag.String("addr", envDefaults.Addr, "listen address")
	dataDir := flag.String("data", envDefaults.DataDir, "data directory for the file store")
	storeKind := flag.String("store", envDefaults.Store, "storage backend: file or sqlite")
	dbPath := flag.String("db", envDefaults.DBPath, "sqlite database path")
	logJSON := flag.Bool("log-json", envDefaults.LogJSON, "log in JSON")
	shopName := flag.String("shop", envDefaults.ShopName, "shop name used in backup filenames")
	flag.Parse()

	cfg := config.Config{
		Env:      *appEnv,
		Addr:     *addr,
		DataDir:  *dataDir,
		Store:    *storeKind,
		DBPath:   *dbPath,
		LogJSON:  *logJSON,
		ShopName: *shopName,
	}

	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.Store, "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(cfg, store).Handler(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", cfg.Addr, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (usecase.Store, error) {
	switch cfg.Store {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, err
		}
		return repo.NewSQLiteStore(cfg.DBPath)
	default:
		return repo.NewFileStore(cfg.DataDir)
	}
}
