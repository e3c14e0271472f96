package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dvrs00/teste-de-software/adapter/out/persistence"
	"github.com/dvrs00/teste-de-software/config"
	"github.com/dvrs00/teste-de-software/core/port/in"
	"github.com/dvrs00/teste-de-software/core/port/out"
	"github.com/dvrs00/teste-de-software/core/service/pessoa"
	"github.com/dvrs00/teste-de-software/infra/database"
	"github.com/dvrs00/teste-de-software/pkg/logger"
	"github.com/dvrs00/teste-de-software/pkg/metrics"
	"github.com/dvrs00/teste-de-software/pkg/ratelimit"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
)

type Dependencies struct {
	Config  *config.Config
	SQLDB   *sqlx.DB
	Redis   *redis.Client
	Metrics *metrics.Metrics

	// Repositories
	PessoaRepo out.PessoaRepository

	// Services
	PessoaService in.PessoaService

	// HTTP
	Limiter ratelimit.Limiter

	closers []func() error
}

// NewDependencies wires the store, cache and services. Without a database
// URL the in-memory store is used; without a Redis URL rate limiting stays
// in-process.
func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	deps := &Dependencies{
		Config:  cfg,
		Metrics: metrics.New(),
	}

	if cfg.UsesDatabase() {
		logger.Info("connecting to postgres (driver=%s)", cfg.DBDriver)
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		deps.SQLDB = db
		deps.closers = append(deps.closers, db.Close)
		deps.Metrics.RegisterDB("pessoas", db.DB)

		if cfg.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := database.Migrate(ctx, db)
			cancel()
			if err != nil {
				deps.Close()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("schema migration applied")
		}

		deps.PessoaRepo = persistence.NewPessoaAdapter(db)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		deps.PessoaRepo = persistence.NewPessoaMemory()
	}

	if cfg.RedisURL != "" {
		client, err := database.NewRedis(cfg.RedisURL)
		if err != nil {
			// Redis only backs rate limiting
			logger.WithError(err).Warn("redis unavailable, rate limiting falls back to memory")
		} else {
			deps.Redis = client
			deps.closers = append(deps.closers, client.Close)
		}
	}

	deps.Limiter = ratelimit.NewSlidingWindowLimiter(deps.Redis, &ratelimit.Config{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
		Window:            time.Second,
		KeyPrefix:         "pessoas:ratelimit",
	})

	deps.PessoaService = pessoa.NewService(deps.PessoaRepo, deps.Metrics)

	cleanup := func() {
		if err := deps.Close(); err != nil {
			logger.WithError(err).Error("cleanup failed")
		}
	}
	return deps, cleanup, nil
}

// Close releases resources in reverse order of acquisition.
func (d *Dependencies) Close() error {
	var err error
	for i := len(d.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, d.closers[i]())
	}
	d.closers = nil
	return err
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	dbCfg := database.DefaultPostgresConfig()
	dbCfg.Driver = cfg.DBDriver
	dbCfg.MaxOpenConns = cfg.DBMaxConns
	dbCfg.MaxIdleConns = cfg.DBMaxIdleConns
	dbCfg.ConnMaxLifetime = cfg.DBConnLifetime

	db, err := database.NewPostgresWithConfig(cfg.DatabaseURL, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// RunMigrations applies the schema and exits; used by -mode migrate.
func RunMigrations(ctx context.Context, cfg *config.Config) error {
	if !cfg.UsesDatabase() {
		return fmt.Errorf("no database configured: set DATABASE_URL or POSTGRES_HOST")
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.Migrate(ctx, db)
}
