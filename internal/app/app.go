package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"soukcod/config"
	controller "soukcod/internal/controller/http"
	"soukcod/internal/controller/http/handlers"
	"soukcod/internal/domain/dispute"
	"soukcod/internal/domain/listing"
	"soukcod/internal/domain/notification"
	"soukcod/internal/domain/order"
	"soukcod/internal/domain/wallet"
	"soukcod/internal/external/kafka"
	"soukcod/internal/external/opensearch"
	dispute_repo "soukcod/internal/repo/dispute"
	identity_repo "soukcod/internal/repo/identity"
	listing_repo "soukcod/internal/repo/listing"
	notification_repo "soukcod/internal/repo/notification"
	order_repo "soukcod/internal/repo/order"
	wallet_repo "soukcod/internal/repo/wallet"
	"soukcod/pkg/health"
	"soukcod/pkg/logger"
	"soukcod/pkg/metrics"
	"soukcod/pkg/postgres"

	"github.com/gin-gonic/gin"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	if err = ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	// Repositories
	walletRepo := wallet_repo.NewPgWalletRepo(pool)
	listingRepo := listing_repo.NewPgListingRepo(pool)
	orderRepo := order_repo.NewPgOrderRepo(pool)
	disputeRepo := dispute_repo.NewPgDisputeRepo(pool)
	notificationRepo := notification_repo.NewPgNotificationRepo(pool)
	identityProvider := identity_repo.NewPgIdentityProvider(pool)

	// Notification sink: stored in the database by default, published to
	// Kafka when downstream delivery workers own the fan-out.
	var notifier notification.Sink = notificationRepo
	if cfg.NotifyMode == "kafka" {
		l.Info("Notify mode: kafka - publishing notifications to %s", cfg.KafkaNotificationsTopic)
		publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaNotificationsTopic)
		defer publisher.Close()
		notifier = kafka.NewNotificationSink(publisher)
	}

	// Optional order-transition audit sink.
	var eventSink order.EventSink
	if len(cfg.OpensearchUrls) > 0 {
		eventSink, err = opensearch.NewEventSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexOrderEvents)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - opensearch.NewEventSink: %w", err))
		}
	}

	// Services
	policy := order.CancellationPolicy(cfg.CancellationPolicy)
	bumpCfg := listing.BumpConfig{
		Rate:     cfg.ItemBumpRate,
		Duration: time.Duration(cfg.ItemBumpHours) * time.Hour,
	}

	walletService := wallet.NewWalletService(walletRepo, l)
	orderService := order.NewOrderService(orderRepo, notifier, eventSink, policy, l)
	disputeService := dispute.NewDisputeService(disputeRepo, identityProvider, notifier, l)
	promotionService := listing.NewPromotionService(listingRepo, notifier, bumpCfg, l)
	notificationService := notification.NewService(notificationRepo)

	// Handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	disputeHandler := handlers.NewDisputeHandler(disputeService)
	walletHandler := handlers.NewWalletHandler(walletService)
	listingHandler := handlers.NewListingHandler(promotionService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	router := controller.NewRouter(orderHandler, disputeHandler, walletHandler, listingHandler, notificationHandler)
	router.SetUp(engine)

	// Probes and metrics sit outside the actor-scoped API group.
	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}
	if cfg.NotifyMode == "kafka" {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	healthRegistry := health.NewRegistry(checkers...)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(healthRegistry, 5*time.Second))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info("Starting HTTP server: port=%d", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		l.Info("Shutting down gracefully...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Fatal(fmt.Errorf("app - Run: %w", err))
	}
}
