package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/internal/engine"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/repository"
	"github.com/rocketscienceinc/gomoku/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku/internal/service"
	"github.com/rocketscienceinc/gomoku/internal/usecase"
	"github.com/rocketscienceinc/gomoku/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	mode, err := entity.ParseMode(conf.Mode)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	moveRepo, closeCache, err := newMoveRepository(ctx, conf.Cache)
	if err != nil {
		return fmt.Errorf("could not create move cache: %w", err)
	}

	defer func() {
		if err = closeCache(); err != nil {
			log.Error("could not close move cache", "error", err)
		}
	}()

	settings := conf.Settings()
	rules := gomoku.NewRules(settings)
	bot := service.NewBotService(logger, rules, engine.New(rules), moveRepo)
	gameManager := usecase.NewGameManager(logger, rules, bot)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "mode", mode.String(), "depth", settings.Depth, "cache", conf.Cache.Driver)
		consoleServer := console.New(logger, gameManager, mode)
		consoleErrCh <- consoleServer.Start(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Console closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newMoveRepository builds the move cache selected by the config and the
// function that releases its connection.
func newMoveRepository(ctx context.Context, conf config.Cache) (repository.MoveRepository, func() error, error) {
	noClose := func() error { return nil }

	switch conf.Driver {
	case config.DriverMemory, "":
		return repository.NewMemoryMoveRepository(), noClose, nil

	case config.DriverNone:
		return repository.NewNoopMoveRepository(), noClose, nil

	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, apperror.ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewMoveRepository(redisStorage.Connection, conf.TTL), redisStorage.Close, nil

	case config.DriverBadger:
		badgerStorage, err := storage.NewBadgerStorage(conf.BadgerPath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open badger storage: %w", err)
		}

		return repository.NewBadgerMoveRepository(badgerStorage.DB, conf.TTL), badgerStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCacheDriver, conf.Driver)
	}
}

