package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-registry/internal/config"
	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-registry/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/league-registry/internal/platform/cache"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

const dbPingTimeout = 5 * time.Second

type storage struct {
	repos store.Repositories
	tx    store.TxManager
	close func(context.Context) error
}

func openStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	var (
		out storage
		err error
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		out, err = openPostgres(ctx, cfg, logger)
	default:
		st := memory.NewStore()
		out = storage{
			repos: st.Repositories(),
			tx:    st,
			close: func(context.Context) error { return nil },
		}
	}
	if err != nil {
		return storage{}, err
	}

	if cfg.CacheEnabled {
		out.repos.Users = cache.NewUserRepository(out.repos.Users, basecache.NewStore(cfg.CacheTTL))
	}

	logger.Info("storage ready", "driver", cfg.StorageDriver, "cache_ttl", cfg.CacheTTL.String())
	return out, nil
}

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return storage{}, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return storage{}, fmt.Errorf("ping postgres: %w", err)
	}
	logger.Info("postgres connected", "target", redactDBURL(dsn), "max_open_conns", cfg.DBMaxOpenConns)

	return storage{
		repos: postgres.NewRepositories(db),
		tx:    postgres.NewTxManager(db),
		close: func(context.Context) error { return db.Close() },
	}, nil
}
