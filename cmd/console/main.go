// Command console serves the Commuter Security admin dashboard: the session,
// page views and resource mutations, backed by the dashboard REST API.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/api"
	"github.com/commutersec/admin-dashboard/internal/app"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/apiclient"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/config"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/db/memory"
	redisdb "github.com/commutersec/admin-dashboard/internal/infrastructure/db/redis"
	infrahttp "github.com/commutersec/admin-dashboard/internal/infrastructure/http"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/http/handlers"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/queue"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/ws"
	"github.com/commutersec/admin-dashboard/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("console stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	probes := map[string]handlers.Pinger{}

	// --- Token store ---
	var tokens ports.TokenStore
	switch cfg.Console.TokenStore {
	case config.StoreRedis:
		store, err := redisdb.OpenTokenStore(ctx, redisdb.Config{
			Addr:    cfg.Redis.Addr,
			DB:      cfg.Redis.DB,
			Timeout: cfg.Redis.Timeout,
		}, cfg.Console.TokenKey)
		if err != nil {
			return err
		}
		defer store.Close()

		tokens = store
		probes["redis"] = store
	default:
		tokens = memory.NewTokenStore()
	}

	// --- Dashboard API ---
	client := apiclient.New(apiclient.Options{
		BaseURL: cfg.Console.APIBaseURL,
		Timeout: cfg.Console.APITimeout,
	}, tokens, logger.Component("apiclient"))
	probes["api"] = client

	// --- Background workers ---
	hub := ws.NewHub(log)
	go hub.Run(ctx)

	dispatcher := queue.NewDispatcher(0, log)
	dispatcher.Start(ctx)

	a := app.New(app.Deps{
		API:      client,
		Tokens:   tokens,
		Notifier: hub,
		Queue:    dispatcher,
		Logger:   logger.Component("app"),
	})
	if err := a.Init(ctx); err != nil {
		log.Warn().Err(err).Msg("stored session could not be restored")
	}

	e := api.NewRouter(api.Options{
		App:    a,
		Stream: http.HandlerFunc(hub.ServeWS),
		Probes: probes,
		Logger: log,
	})

	log.Info().
		Str("port", cfg.Console.Port).
		Str("api", client.BaseURL()).
		Str("token_store", cfg.Console.TokenStore).
		Msg("console starting")
	return infrahttp.Serve(ctx, e, net.JoinHostPort("", cfg.Console.Port), log)
}
