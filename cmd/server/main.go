package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"paylens/internal/audit"
	jwttoken "paylens/internal/jwt_token"
	"paylens/internal/payments"
	"paylens/internal/payments/handler"
	querymetrics "paylens/internal/payments/metrics"
	"paylens/internal/platform/clock"
	"paylens/internal/platform/config"
	"paylens/internal/platform/httpserver"
	"paylens/internal/platform/logger"
	"paylens/internal/platform/metrics"
	platformredis "paylens/internal/platform/redis"
	httptransport "paylens/internal/transport/http"
	"paylens/pkg/platform/circuit"
	"paylens/pkg/platform/tx"
)

// main wires the reporting service: configuration, stores, the audit
// pipeline, the query service, and the HTTP surface. Business logic lives in
// internal packages; this file only assembles and supervises them.
func main() {
	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	slog.SetDefault(log)

	httpMetrics := metrics.New()
	queryMetrics := querymetrics.New()
	auditMetrics := audit.NewMetrics()

	// Postgres backs the payment store, the audit trail, or both; they share
	// one pool.
	var db *sql.DB
	if cfg.Store.Backend == config.BackendPostgres || cfg.Audit.Backend == config.BackendPostgres {
		db, err = openPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
	}

	var redisClient *platformredis.Client
	if cfg.Store.Backend == config.BackendRedis {
		redisClient, err = platformredis.New(cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer func() { _ = redisClient.Close() }()
	}

	store, err := buildPaymentStore(ctx, cfg, db, redisClient)
	if err != nil {
		log.Error("failed to build payment store", "error", err)
		os.Exit(1)
	}

	appender, trail, sinkClose, err := buildAuditBackend(ctx, cfg, db)
	if err != nil {
		log.Error("failed to build audit backend", "error", err)
		os.Exit(1)
	}
	if sinkClose != nil {
		defer sinkClose()
	}

	publisher := audit.NewPublisher(cfg.Audit.Buffer,
		audit.WithPublisherLogger(log),
		audit.WithPublisherMetrics(auditMetrics),
	)
	worker := audit.NewWorker(appender, publisher.Events(),
		audit.WithWorkerLogger(log),
		audit.WithWorkerMetrics(auditMetrics),
		audit.WithWorkerBreaker(circuit.New("audit-store")),
	)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		_ = worker.Run(ctx)
	}()

	svc, err := payments.New(store, clock.System(),
		payments.WithLogger(log),
		payments.WithAuditPublisher(publisher),
		payments.WithMetrics(queryMetrics),
	)
	if err != nil {
		log.Error("failed to build payment service", "error", err)
		os.Exit(1)
	}

	if cfg.Store.SeedDemo {
		if err := seedDemo(ctx, log, cfg, db, store); err != nil {
			log.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	tokens := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	reports := handler.New(svc, trail, log, httpMetrics, queryMetrics,
		jwttoken.NewJWTServiceAdapter(tokens), cfg.Auth.APIKeyHash)

	router := httptransport.NewRouter(log, healthProbe(db, redisClient), reports)
	srv := httpserver.New(log, cfg.Server, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	log.Info("paylens started",
		"addr", cfg.Server.Addr,
		"store_backend", cfg.Store.Backend,
		"audit_backend", cfg.Audit.Backend,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	// Closing the publisher lets the worker finish whatever is buffered
	// before the process exits.
	publisher.Close()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("audit worker did not drain before the shutdown deadline")
	}
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func buildPaymentStore(ctx context.Context, cfg config.Config, db *sql.DB, redisClient *platformredis.Client) (payments.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		store := payments.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure payments schema: %w", err)
		}
		return store, nil
	case config.BackendRedis:
		return payments.NewRedisStore(redisClient.Client), nil
	default:
		return payments.NewInMemoryStore(), nil
	}
}

// buildAuditBackend returns the write side of the audit pipeline and, when
// the backend can be read back, the trail served by the API. The Kafka sink
// is write-only, so its trail is nil and the endpoint reports unavailable.
func buildAuditBackend(ctx context.Context, cfg config.Config, db *sql.DB) (audit.Appender, handler.AuditTrail, func(), error) {
	switch cfg.Audit.Backend {
	case config.BackendPostgres:
		store := audit.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, nil, nil, fmt.Errorf("ensure audit schema: %w", err)
		}
		return store, store, nil, nil
	case config.BackendKafka:
		sink, err := audit.NewKafkaSink(cfg.Audit.KafkaBrokers, cfg.Audit.KafkaTopic)
		if err != nil {
			return nil, nil, nil, err
		}
		startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := sink.Ping(startupCtx); err != nil {
			sink.Close()
			return nil, nil, nil, err
		}
		if err := sink.EnsureTopic(startupCtx, 1, 1); err != nil {
			sink.Close()
			return nil, nil, nil, err
		}
		return sink, nil, sink.Close, nil
	default:
		store := audit.NewInMemoryStore()
		return store, store, nil, nil
	}
}

func seedDemo(ctx context.Context, log *slog.Logger, cfg config.Config, db *sql.DB, store payments.Store) error {
	now := time.Now()
	seed := func(ctx context.Context) error {
		n, err := payments.SeedDemo(ctx, store, now)
		if err != nil {
			return err
		}
		log.Info("demo data seeded", "payments", n)
		return nil
	}

	// One transaction, so a partial seed never survives a crash.
	if cfg.Store.Backend == config.BackendPostgres {
		return tx.Run(ctx, db, seed)
	}
	return seed(ctx)
}

// healthProbe aggregates connectivity checks for every backend in use.
// With only the in-memory store there is nothing to probe.
func healthProbe(db *sql.DB, redisClient *platformredis.Client) httptransport.HealthService {
	var probes []func(context.Context) error
	if db != nil {
		probes = append(probes, db.PingContext)
	}
	if redisClient != nil {
		probes = append(probes, redisClient.Health)
	}
	if len(probes) == 0 {
		return nil
	}

	return httptransport.ProbeFunc(func(ctx context.Context) error {
		for _, probe := range probes {
			if err := probe(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
