package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"postboard/internal/auth"
	"postboard/internal/config"
	"postboard/internal/db"
	"postboard/internal/directory"
	"postboard/internal/handlers"
	"postboard/internal/logging"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.New(cfg.Env, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open session store: %s", err)
	}
	defer closeStore()

	sessions := auth.NewManager(store, cfg.Session.MaxAge, cfg.Session.Secure)
	users := directory.NewClient(cfg.Backend.UsersURL, cfg.Backend.Timeout)

	h, err := handlers.New(users, sessions, logger)
	if err != nil {
		log.Fatalf("failed to load templates: %s", err)
	}

	server := http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      h.Routes(),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	go func() {
		logger.Info("server started",
			slog.String("address", cfg.HTTPServer.Address),
			slog.String("users_url", cfg.Backend.UsersURL),
			slog.String("session_store", cfg.Session.Store),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %s", err)
		}
	}()

	<-ctx.Done()

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}
	logger.Info("Server stopped")
}

// openStore builds the configured session store and returns a func that
// releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (auth.Store, func(), error) {
	switch cfg.Session.Store {
	case "sqlite":
		dbc, err := db.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx, dbc); err != nil {
			dbc.Close()
			return nil, nil, err
		}
		store := auth.NewSQLStore(dbc)
		go purgeExpired(ctx, store, logger)
		return store, func() { dbc.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return auth.NewRedisStore(client), func() { client.Close() }, nil

	default:
		return auth.NewMemoryStore(), func() {}, nil
	}
}

// purgeExpired drops expired SQLite sessions every hour until ctx ends.
// Redis expires keys itself and the memory store drops them on lookup.
func purgeExpired(ctx context.Context, store *auth.SQLStore, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := store.Purge(ctx, now)
			if err != nil {
				logger.Warn("session purge failed", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.Debug("expired sessions purged", slog.Int64("count", n))
			}
		}
	}
}
