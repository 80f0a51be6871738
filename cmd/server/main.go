// Command server runs the registration gateway: fraud-gated signup, sign-in,
// and basket reconciliation behind one HTTP surface. Backends (postgres,
// redis, kafka) are optional; anything unconfigured falls back to in-memory
// implementations so the binary runs standalone in development.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"gatekeep/internal/audit"
	"gatekeep/internal/basket"
	"gatekeep/internal/device"
	identityHandler "gatekeep/internal/identity/handler"
	identityService "gatekeep/internal/identity/service"
	sessionStore "gatekeep/internal/identity/store/session"
	userStore "gatekeep/internal/identity/store/user"
	"gatekeep/internal/platform/config"
	"gatekeep/internal/platform/httpserver"
	"gatekeep/internal/platform/logger"
	"gatekeep/internal/platform/metrics"
	platformRedis "gatekeep/internal/platform/redis"
	registrationHandler "gatekeep/internal/registration/handler"
	registrationService "gatekeep/internal/registration/service"
	"gatekeep/internal/risk"
	"gatekeep/internal/session"
	httptransport "gatekeep/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// User store: postgres when configured, in-memory otherwise.
	var users userStore.Store = userStore.NewMemory()
	checks := map[string]httptransport.HealthChecker{}
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		users = userStore.NewPostgres(db)
		checks["postgres"] = pingChecker{db}
	}

	// Basket store: redis when configured, in-memory otherwise.
	var baskets basket.Merger = basket.NewMemory()
	if cfg.Redis.URL != "" {
		redisClient, err := platformRedis.New(cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		baskets = basket.NewRedis(redisClient.Client)
		checks["redis"] = redisClient
	}

	// Audit sink: kafka when configured, in-memory otherwise.
	var auditSink audit.Store = audit.NewMemoryStore()
	if len(cfg.KafkaBrokers) > 0 {
		kafkaStore, err := audit.NewKafkaStore(cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			os.Exit(1)
		}
		defer kafkaStore.Close()
		auditSink = kafkaStore
	}

	publisher := audit.NewPublisher(log)
	worker := audit.NewWorker(publisher, auditSink, log)

	credentials := identityService.New(users, sessionStore.NewMemory(), cfg.JWTSigningKey)
	bootstrap := session.NewBootstrap(baskets, publisher, m, log)
	riskClient := risk.NewHTTPClient(cfg.RiskEndpoint, cfg.RiskTimeout)
	devices := device.NewService(true)

	orchestrator := registrationService.New(
		credentials, riskClient, bootstrap, devices, publisher, m, log, cfg.RejectionThreshold,
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Registration: registrationHandler.New(orchestrator, log),
		Identity:     identityHandler.New(credentials, bootstrap, publisher, m, log),
		Metrics:      m,
		Logger:       log,
		Checks:       checks,
	})

	srv := httpserver.New(cfg.Addr, router)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("starting gatekeep", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

type pingChecker struct {
	db *sql.DB
}

func (p pingChecker) Health(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
