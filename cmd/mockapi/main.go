// Command mockapi serves a development implementation of the dashboard REST
// API, seeded with fixture data.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/docs"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/config"
	mongodb "github.com/commutersec/admin-dashboard/internal/infrastructure/db/mongo"
	infrahttp "github.com/commutersec/admin-dashboard/internal/infrastructure/http"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/http/handlers"
	"github.com/commutersec/admin-dashboard/internal/mockapi"
	"github.com/commutersec/admin-dashboard/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "mockapi",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("mock API stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	probes := map[string]handlers.Pinger{}

	// --- Storage ---
	var repos mockapi.Repositories
	switch cfg.MockAPI.Store {
	case config.StoreMongo:
		store, err := mongodb.Open(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Mongo.Timeout,
		})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close(context.Background()) }()

		repos = mockapi.NewMongoRepositories(store.Database())
		probes["mongo"] = store
	default:
		repos = mockapi.NewMemoryRepositories()
	}

	svc := mockapi.NewServices(repos, cfg.MockAPI.JWTSecret, cfg.MockAPI.TokenTTL, logger.Component("service"))
	if err := mockapi.Seed(ctx, repos, svc.Auth, cfg.MockAPI.SeedPassword, log); err != nil {
		return err
	}

	docs.SwaggerInfo.Host = net.JoinHostPort("localhost", cfg.MockAPI.Port)
	docs.SwaggerInfo.BasePath = cfg.MockAPI.BasePath

	e := mockapi.NewRouter(mockapi.Options{
		Services:  svc,
		JWTSecret: cfg.MockAPI.JWTSecret,
		BasePath:  cfg.MockAPI.BasePath,
		Probes:    probes,
		Logger:    log,
	})

	log.Info().
		Str("port", cfg.MockAPI.Port).
		Str("base_path", cfg.MockAPI.BasePath).
		Str("store", cfg.MockAPI.Store).
		Msg("mock API starting")
	return infrahttp.Serve(ctx, e, net.JoinHostPort("", cfg.MockAPI.Port), log)
}
