package app

import (
	"context"
	"jobly/internal/config"
	repositories "jobly/internal/domain/repository"
	httpserver "jobly/internal/http-server"
	"jobly/internal/http-server/handlers"
	"jobly/internal/repositories/cache"
	"jobly/internal/repositories/inmemory"
	"jobly/internal/repositories/postgres"
	"jobly/internal/repositories/publisher"
	"jobly/internal/services"
	"jobly/pkg/lib/logger/zaplogger"

	"go.uber.org/zap"
)

func Run(ctx context.Context, log *zap.Logger, config config.ServiceConfig) error {
	storage, closeStorage, err := newStorage(ctx, log, config)
	if err != nil {
		log.Error("Failed to set up storage", zaplogger.Err(err))
		return err
	}
	defer closeStorage()

	var jobsCache repositories.CompanyJobsCacheInterface
	if config.RedisConfig.URL != "" {
		rdb, err := cache.NewRedisClient(ctx, config.RedisConfig.URL)
		if err != nil {
			log.Error("Failed to connect to redis", zaplogger.Err(err))
			return err
		}
		defer rdb.Close()
		jobsCache = cache.NewCompanyJobsCache(rdb, config.RedisConfig.TTL)
		log.Info("Company jobs cache enabled", zap.Duration("ttl", config.RedisConfig.TTL))
	}

	var jobsPublisher repositories.JobPublisherInterface
	if config.NATSConfig.URL != "" {
		natsPublisher, err := publisher.NewNATSJobPublisher(ctx, log, config.NATSConfig.URL)
		if err != nil {
			log.Error("Failed to create job event publisher", zaplogger.Err(err))
			return err
		}
		defer natsPublisher.Close()
		jobsPublisher = natsPublisher
	}

	services := services.NewServices(log, storage, jobsCache, jobsPublisher)

	handlers := handlers.NewHandlers(log, services.JobsService)

	server := httpserver.NewServer(log, handlers, config)
	if err := server.Run(ctx); err != nil {
		log.Error("Failed to run HTTP server", zaplogger.Err(err))
		return err
	}
	return nil
}

func newStorage(ctx context.Context, log *zap.Logger, cfg config.ServiceConfig) (repositories.JobRepositoryInterface, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Info("Using in-memory storage", zap.Strings("companies", cfg.DbConfig.SeedCompanies))
		return inmemory.NewJobsRepository(cfg.DbConfig.SeedCompanies...), func() {}, nil
	}

	db, err := postgres.NewDatabase(ctx, cfg.DbConfig.DBConn)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Connected to database",
		zap.String("host", cfg.DbConfig.Host),
		zap.String("dbname", cfg.DbConfig.DBName))

	return db, db.GetPool().Close, nil
}
