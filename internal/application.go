package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-stats/internal/config"
	"github.com/rocketscienceinc/tictactoe-stats/internal/repository"
	"github.com/rocketscienceinc/tictactoe-stats/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-stats/internal/service"
	"github.com/rocketscienceinc/tictactoe-stats/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-stats/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-stats/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if _, err := tictactoe.Create(conf.Game.DefaultBoardSize); err != nil {
		return fmt.Errorf("bad default board size: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	stores, err := openStores(ctx, conf)
	if err != nil {
		return err
	}
	defer stores.close(log)

	log.Info("Storage ready", "results", conf.Storage.Results, "sessions", conf.Storage.Sessions)

	resultsService := service.NewResultsService(logger, stores.results)
	gameManager := usecase.NewGameManager(logger, stores.sessions, resultsService, conf.Game.DefaultBoardSize)

	handlers := rest.NewHandlers(logger, resultsService, gameManager)
	server := rest.NewServer(conf.HTTP.Port, rest.NewRouter(logger, handlers, conf.HTTP.AllowedOrigins), rest.ServerOptions{
		ReadTimeout:  conf.HTTP.ReadTimeout,
		WriteTimeout: conf.HTTP.WriteTimeout,
		IdleTimeout:  conf.HTTP.IdleTimeout,
	})

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTP.Port)
		httpErrCh <- server.Start()
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-httpErrCh
}

type stores struct {
	redis *storage.RedisStorage
	sql   *storage.Storage

	results  repository.ResultRepository
	sessions repository.SessionRepository
}

func openStores(ctx context.Context, conf *config.Config) (*stores, error) {
	st := &stores{}

	if conf.Storage.Results == config.DriverRedis || conf.Storage.Sessions == config.DriverRedis {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}
		st.redis = redisStorage
	}

	var err error
	switch conf.Storage.Results {
	case config.DriverRedis:
		st.results = repository.NewRedisResultRepository(st.redis.Connection)
	case config.DriverPostgres:
		st.sql, err = storage.NewPostgresStorage(ctx, conf.Postgres.DSN, storage.PostgresOptions{
			MaxOpenConns:    conf.Postgres.MaxOpenConns,
			MaxIdleConns:    conf.Postgres.MaxIdleConns,
			ConnMaxLifetime: conf.Postgres.ConnMaxLifetime,
		})
	case config.DriverSQLite:
		st.sql, err = storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
	default:
		st.results = repository.NewMemoryResultRepository()
	}

	if err != nil {
		st.close(nil)
		return nil, fmt.Errorf("could not open %s storage: %w", conf.Storage.Results, err)
	}

	if st.sql != nil {
		if err = st.sql.Init(ctx); err != nil {
			st.close(nil)
			return nil, fmt.Errorf("could not prepare results table: %w", err)
		}

		if st.results, err = repository.NewSQLResultRepository(st.sql); err != nil {
			st.close(nil)
			return nil, err
		}
	}

	if conf.Storage.Sessions == config.DriverRedis {
		st.sessions = repository.NewSessionRepository(st.redis.Connection, conf.Game.SessionTTL)
	} else {
		st.sessions = repository.NewMemorySessionRepository()
	}

	return st, nil
}

func (that *stores) close(log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}

	if that.redis != nil {
		if err := that.redis.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	if that.sql != nil {
		if err := that.sql.Close(); err != nil {
			log.Error("could not close sql storage", "error", err)
		}
	}
}
