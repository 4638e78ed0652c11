package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/scrapegenie/storefront/internal/auth"
	"github.com/scrapegenie/storefront/internal/config"
	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/handlers"
	"github.com/scrapegenie/storefront/internal/logger"
	"github.com/scrapegenie/storefront/internal/marketplace"
	"github.com/scrapegenie/storefront/internal/server"
	"github.com/scrapegenie/storefront/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.AppName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return fmt.Errorf("cookie manager: %w", err)
	}

	store, err := sessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	sessions := session.NewFromConfig(cfg.Session, store)

	api, err := marketplace.New(cfg.Marketplace.BaseURL,
		marketplace.WithTimeout(cfg.Marketplace.Timeout),
		marketplace.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("marketplace client: %w", err)
	}

	authSvc := auth.NewService(api, sessions, auth.WithLogger(log))

	views, err := handlers.NewViews(cfg.AppName, log)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	h := handlers.New(api, authSvc, cookies, views, handlers.WithLogger(log))
	router := handlers.NewRouter(handlers.RouterConfig{
		Handlers:       h,
		Sessions:       sessions,
		Cookies:        cookies,
		Auth:           authSvc,
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	return server.New(cfg.Server, router, log).Run(ctx)
}

// sessionStore picks Redis when configured, in-process memory otherwise.
// Memory is fine for a single instance; Redis keeps visitors signed in
// across restarts and replicas.
func sessionStore(ctx context.Context, cfg config.Config, log *slog.Logger) (session.Store, error) {
	if cfg.RedisURL == "" {
		log.Info("using in-memory session store")
		return session.NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info("using redis session store")
	return session.NewRedisStore(client), nil
}
