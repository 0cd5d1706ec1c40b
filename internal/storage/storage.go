package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CynthiaM111/weshare-sub002/internal/config"
	"github.com/CynthiaM111/weshare-sub002/internal/repository/memory"
	"github.com/CynthiaM111/weshare-sub002/internal/repository/mongodb"
	"github.com/CynthiaM111/weshare-sub002/internal/repository/postgres"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

// Stores is the set of repositories backed by one storage driver.
type Stores struct {
	Driver     string
	Rides      ports.RideRepo
	Users      ports.UserRepo
	Categories ports.CategoryRepo

	closers []func(context.Context) error
}

func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, &cfg.Postgres, log)
	case config.DriverMongo:
		return openMongo(ctx, &cfg.Mongo, log)
	case config.DriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return &Stores{
			Driver:     config.DriverMemory,
			Rides:      memory.NewRideRepo(),
			Users:      memory.NewUserRepo(),
			Categories: memory.NewCategoryRepo(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func (s *Stores) Close(ctx context.Context) error {
	var errs []error
	for _, c := range s.closers {
		if err := c(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func openPostgres(ctx context.Context, cfg *config.PostgresConfig, log logger.Logger) (*Stores, error) {
	if err := runMigrations(cfg, log); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		cfg.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = db.Master.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("host", cfg.Host),
		logger.Int("port", cfg.Port),
		logger.String("database", cfg.Database),
	)

	return &Stores{
		Driver:     config.DriverPostgres,
		Rides:      postgres.NewRideRepo(db),
		Users:      postgres.NewUserRepo(db),
		Categories: postgres.NewCategoryRepo(db),
		closers: []func(context.Context) error{
			func(context.Context) error { return db.Master.Close() },
		},
	}, nil
}

func runMigrations(cfg *config.PostgresConfig, log logger.Logger) error {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err = goose.Up(db, cfg.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully", logger.String("dir", cfg.MigrationsDir))
	return nil
}

func openMongo(ctx context.Context, cfg *config.MongoConfig, log logger.Logger) (*Stores, error) {
	store, err := mongodb.Connect(ctx, cfg.URI, cfg.Database, cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}

	log.LogAttrs(ctx, logger.InfoLevel, "mongo connected",
		logger.String("database", cfg.Database),
	)

	return &Stores{
		Driver:     config.DriverMongo,
		Rides:      store.Rides(),
		Users:      store.Users(),
		Categories: store.Categories(),
		closers:    []func(context.Context) error{store.Close},
	}, nil
}
