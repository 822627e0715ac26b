package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/droptoken-backend/internal/config"
	"github.com/rocketscienceinc/droptoken-backend/internal/repository"
	"github.com/rocketscienceinc/droptoken-backend/internal/repository/storage"
	"github.com/rocketscienceinc/droptoken-backend/internal/usecase"
	"github.com/rocketscienceinc/droptoken-backend/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := usecase.NewRegistry(conf.Rules())

	var (
		gameManager *usecase.GameManager
		routerOpts  []rest.RouterOption
	)

	if conf.Redis.Enabled {
		redisClient, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		log.Info("Mirroring game snapshots to redis", "addr", conf.Redis.GetRedisAddr())
		gameRepo := repository.NewGameRepository(redisClient)
		gameManager = usecase.NewGameManager(logger, registry, gameRepo)
		routerOpts = append(routerOpts, rest.WithSnapshots(gameRepo))
	} else {
		gameManager = usecase.NewGameManager(logger, registry, nil)
	}

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "rules", conf.Rules())

	if err := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameManager, routerOpts...)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
