package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	dndhandler "github.com/urbanshade/notify-center/internal/api/handlers/dnd"
	notifhandler "github.com/urbanshade/notify-center/internal/api/handlers/notification"
	"github.com/urbanshade/notify-center/internal/api/router"
	"github.com/urbanshade/notify-center/internal/api/server"
	"github.com/urbanshade/notify-center/internal/config"
	"github.com/urbanshade/notify-center/internal/eventbus"
	dndrepo "github.com/urbanshade/notify-center/internal/repository/dnd"
	notifrepo "github.com/urbanshade/notify-center/internal/repository/notification"
	dndsvc "github.com/urbanshade/notify-center/internal/service/dnd"
	notifsvc "github.com/urbanshade/notify-center/internal/service/notification"
	"github.com/urbanshade/notify-center/internal/storage"
	filestore "github.com/urbanshade/notify-center/internal/storage/file"
	pgstore "github.com/urbanshade/notify-center/internal/storage/postgres"
	redisstore "github.com/urbanshade/notify-center/internal/storage/redis"
	"github.com/urbanshade/notify-center/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	kv := mustOpenStorage(ctx, cfg)

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	bus, err := eventbus.NewActionBus(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create action bus")
	}

	dndService := dndsvc.NewService(dndrepo.NewRepository(kv), time.Now)
	if err := dndService.Load(ctx, cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load dnd settings, starting with defaults")
	}

	notifService := notifsvc.NewService(notifrepo.NewRepository(kv), dndService, bus, time.Now)
	if err := notifService.Load(ctx, cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load notifications, starting empty")
	}

	// Reload state written by other instances, the way browser tabs react
	// to storage events.
	go func() {
		for key := range kv.Subscribe(ctx) {
			switch key {
			case storage.KeyDndSettings:
				if err := dndService.Reload(ctx, cfg.Retry); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to reload dnd settings")
				}
			case storage.KeyNotifications:
				if err := notifService.Reload(ctx, cfg.Retry); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to reload notifications")
				}
			}
		}
	}()

	poller := worker.NewPoller(dndService, cfg.Poll.Interval)
	go poller.Run(ctx, cfg.Retry)

	dndHandler := dndhandler.NewHandler(dndService, val, cfg)
	notifHandler := notifhandler.NewHandler(notifService, val, cfg)

	r := router.New(dndHandler, notifHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := kv.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close storage")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}

// mustOpenStorage opens the KV backend selected by storage.driver.
func mustOpenStorage(ctx context.Context, cfg *config.Config) storage.KV {
	switch cfg.Storage.Driver {
	case "redis":
		dbNum, err := strconv.Atoi(cfg.Redis.Database)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
		}

		rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
		}

		return redisstore.New(rdb)

	case "postgres":
		opts := &dbpg.Options{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}

		slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
		for _, s := range cfg.Database.Slaves {
			slaveDSNs = append(slaveDSNs, s.DSN())
		}

		db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
		}

		store := pgstore.New(db)
		if err := store.Init(ctx); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to init kv_state table")
		}

		return store

	default:
		store, err := filestore.New(cfg.Storage.Dir)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open file storage")
		}

		return store
	}
}
