package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "logistics/internal/app"
	"logistics/internal/handlers/rest/deliveries_get"
	"logistics/internal/handlers/rest/delivery_delete"
	"logistics/internal/handlers/rest/delivery_get"
	"logistics/internal/handlers/rest/delivery_post"
	"logistics/internal/handlers/rest/delivery_problems_get"
	"logistics/internal/handlers/rest/delivery_problems_post"
	"logistics/internal/handlers/rest/delivery_put"
	"logistics/internal/handlers/rest/deliveryman_deliveries_get"
	"logistics/internal/handlers/rest/deliveryman_delete"
	"logistics/internal/handlers/rest/deliveryman_delivery_put"
	"logistics/internal/handlers/rest/deliveryman_get"
	"logistics/internal/handlers/rest/deliveryman_post"
	"logistics/internal/handlers/rest/deliveryman_put"
	"logistics/internal/handlers/rest/deliverymen_get"
	"logistics/internal/handlers/rest/healthcheck_head"
	"logistics/internal/handlers/rest/ping_get"
	"logistics/internal/handlers/rest/problem_cancel_delivery_delete"
	"logistics/internal/handlers/rest/problems_pending_get"
	"logistics/internal/handlers/rest/recipient_delete"
	"logistics/internal/handlers/rest/recipient_get"
	"logistics/internal/handlers/rest/recipient_post"
	"logistics/internal/handlers/rest/recipient_put"
	"logistics/internal/handlers/rest/recipients_get"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/dotenv"
	"logistics/internal/pkg/kafka"
	metrics_system "logistics/internal/pkg/metrics"
	"logistics/internal/pkg/middlewares/graceful_shutdown"
	"logistics/internal/pkg/middlewares/metrics"
	"logistics/internal/pkg/middlewares/rate_limiter"
	"logistics/internal/pkg/middlewares/timeout"
	"logistics/internal/pkg/postgres"
	"logistics/pkg/logger"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting logistics application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/recipient", recipient_post.New(log, app.ServiceRecipient)).Methods("POST")
	router.Handle("/recipients", recipients_get.New(log, app.ServiceRecipient)).Methods("GET")
	router.Handle("/recipient/{id}", recipient_get.New(log, app.ServiceRecipient)).Methods("GET")
	router.Handle("/recipient/{id}", recipient_put.New(log, app.ServiceRecipient)).Methods("PUT")
	router.Handle("/recipient/{id}", recipient_delete.New(log, app.ServiceRecipient)).Methods("DELETE")

	router.Handle("/deliveryman", deliveryman_post.New(log, app.ServiceDeliveryman)).Methods("POST")
	router.Handle("/deliverymen", deliverymen_get.New(log, app.ServiceDeliveryman)).Methods("GET")
	router.Handle("/deliveryman/{id}", deliveryman_get.New(log, app.ServiceDeliveryman)).Methods("GET")
	router.Handle("/deliveryman/{id}", deliveryman_put.New(log, app.ServiceDeliveryman)).Methods("PUT")
	router.Handle("/deliveryman/{id}", deliveryman_delete.New(log, app.ServiceDeliveryman)).Methods("DELETE")

	router.Handle("/delivery", delivery_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery", deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	// до /delivery/{id}, иначе mux сматчит problems как {id}
	router.Handle("/delivery/problems", problems_pending_get.New(log, app.ServiceProblem)).Methods("GET")
	router.Handle("/delivery/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery/{id}", delivery_put.New(log, app.ServiceDelivery)).Methods("PUT")
	router.Handle("/delivery/{id}", delivery_delete.New(log, app.ServiceDelivery)).Methods("DELETE")

	router.Handle("/deliveryman/{id}/deliveries", deliveryman_deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/deliveryman/{deliverymanId}/deliveries/{id}", deliveryman_delivery_put.New(log, app.ServiceDelivery)).Methods("PUT")

	router.Handle("/delivery/{id}/problems", delivery_problems_post.New(log, app.ServiceProblem)).Methods("POST")
	router.Handle("/delivery/{id}/problems", delivery_problems_get.New(log, app.ServiceProblem)).Methods("GET")
	router.Handle("/problem/{id}/cancel-delivery", problem_cancel_delivery_delete.New(log, app.ServiceProblem)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
