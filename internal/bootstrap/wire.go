package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/adminboard/account-service/internal/application/directory"
	"github.com/adminboard/account-service/internal/application/identity"
	"github.com/adminboard/account-service/internal/application/report"
	"github.com/adminboard/account-service/internal/config"
	"github.com/adminboard/account-service/internal/infrastructure/db/postgres"
	"github.com/adminboard/account-service/internal/infrastructure/memory"
	rabbitmq_pub "github.com/adminboard/account-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/adminboard/account-service/internal/infrastructure/metrics"
	"github.com/adminboard/account-service/internal/infrastructure/redis"
	"github.com/adminboard/account-service/internal/infrastructure/security"
	"github.com/adminboard/account-service/internal/logger"
	http_handlers "github.com/adminboard/account-service/internal/transport/http/handlers"
	"github.com/adminboard/account-service/internal/transport/http/middleware"
	"github.com/adminboard/account-service/internal/transport/http/response"
	"github.com/adminboard/account-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(dsn string) (*sql.DB, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(rabbitURL, exchange string) (Publisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

// Publisher covers both lifecycle event ports.
type Publisher interface {
	identity.EventPublisher
	directory.EventPublisher
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(rabbitURL, exchange string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(rabbitURL, exchange)
		},
		NewRouter: router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db — required; a dead store means the service cannot do anything.
	db, err := deps.NewDB(cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	accountRepo := postgres.NewAccountRepo(db)

	// 2) redis (best-effort report cache)
	var reportCache report.Cache
	var cachePing func(context.Context) error
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; report cache disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			cachePing = c.Ping

			if cli, ok := c.(*redis.Client); ok {
				reportCache = redis.NewReportCache(cli, cfg.ReportCacheTTL)
			}
		}
	}

	// 3) publisher
	var pub Publisher
	pubMode := "amqp"
	if cfg.RabbitURL == "" {
		pub = memory.NewNoopPublisher()
		pubMode = "noop"
	} else {
		pub, err = deps.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			if cfg.Env == "dev" {
				logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
				pub = memory.NewNoopPublisher()
				pubMode = "noop"
			} else {
				runCleanup(cleanupFns)
				return nil, nil, err
			}
		}
	}

	if c, ok := pub.(interface{ Close() error }); ok {
		cleanupFns = append(cleanupFns, func() { _ = c.Close() })
	}

	// 4) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(12)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// dev convenience: well-known accounts for poking at the API locally
	if cfg.Env == "dev" {
		postgres.SeedAccounts(context.Background(), accountRepo, hasher)
	}

	// 5) metrics capability
	var metricsProvider report.MetricsProvider
	switch cfg.MetricsMode {
	case "static":
		metricsProvider = metrics.NewStaticProvider()
	default:
		metricsProvider = metrics.NewUnavailableProvider()
	}

	// 6) services
	identitySvc := identity.NewService(accountRepo, hasher, signer, pub, identity.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})
	directorySvc := directory.NewService(accountRepo, pub)
	reportSvc := report.NewService(accountRepo, metricsProvider, nil, reportCache)

	// 7) handlers + middleware
	identityH := http_handlers.NewIdentityHandler(identitySvc)
	directoryH := http_handlers.NewDirectoryHandler(directorySvc)
	reportH := http_handlers.NewReportHandler(reportSvc)
	healthH := http_handlers.NewHealthHandler(db, cachePing, pubMode)

	authMW := middleware.Auth(signer, response.WriteError)

	// 8) router
	mux, err := deps.NewRouter(router.Deps{
		Health:    healthH,
		Identity:  identityH,
		Directory: directoryH,
		Report:    reportH,
		AuthMW:    authMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 9) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

func runCleanup(fns []func()) {
	// reverse order, like defers
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
