package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-registry/internal/config"
	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/infrastructure/account/password"
	"github.com/riskibarqy/league-registry/internal/infrastructure/account/token"
	"github.com/riskibarqy/league-registry/internal/infrastructure/messaging"
	"github.com/riskibarqy/league-registry/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/league-registry/internal/platform/id"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
	"github.com/riskibarqy/league-registry/internal/platform/resilience"
	"github.com/riskibarqy/league-registry/internal/usecase"
)

// App owns the HTTP server and every resource opened to serve it.
type App struct {
	Server  *http.Server
	closers []func(context.Context) error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{}

	storage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, storage.close)

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	if closer, ok := publisher.(interface{ Close() error }); ok {
		a.closers = append(a.closers, func(context.Context) error { return closer.Close() })
	}

	tokens, err := token.NewManager(cfg.AuthJWTSecret, cfg.AuthIssuer, cfg.AuthTokenTTL)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("build token manager: %w", err)
	}

	ids := idgen.NewUUIDGenerator()
	limits := usecase.ListLimits{Default: cfg.ListDefaultLimit, Max: cfg.ListMaxLimit}
	repos := storage.repos

	authSvc := usecase.NewAuthService(repos.Users, password.NewHasher(cfg.AuthBcryptCost), tokens, ids, cfg.AuthAllowAdminSignup)
	teamSvc := usecase.NewTeamService(repos, storage.tx, ids, publisher, logger, limits, cfg.HydrateWorkers)
	playerSvc := usecase.NewPlayerService(repos, storage.tx, ids, publisher, logger, limits)
	scheduleSvc := usecase.NewScheduleService(repos, storage.tx, ids, publisher, logger)

	handler := httpapi.NewHandler(authSvc, teamSvc, playerSvc, scheduleSvc, logger)
	router := httpapi.NewRouter(handler, tokens, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	a.Server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	logger.Info("application wired",
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"nats_enabled", cfg.NATSEnabled,
	)

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if closeErr := a.closers[i](ctx); closeErr != nil {
			err = errors.CombineErrors(err, closeErr)
		}
	}
	a.closers = nil
	return err
}

func newPublisher(cfg config.Config, logger *logging.Logger) (event.Publisher, error) {
	if !cfg.NATSEnabled {
		logger.Info("nats disabled", "reason", "NATS_ENABLED=false")
		return usecase.NoopPublisher(), nil
	}

	publisher, err := messaging.NewNATSPublisher(messaging.NATSPublisherConfig{
		URL:           cfg.NATSURL,
		SubjectPrefix: cfg.NATSSubjectPrefix,
		ClientName:    cfg.ServiceName,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.NATSCircuitEnabled,
			FailureThreshold: cfg.NATSCircuitFailureCount,
			OpenTimeout:      cfg.NATSCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.NATSCircuitHalfOpenMaxReq,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	logger.Info("nats publisher connected", "url", cfg.NATSURL, "subject_prefix", cfg.NATSSubjectPrefix)
	return publisher, nil
}
