package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/clients"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/events"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/handlers"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/repository"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/server"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/service"
)

func main() {
	cfg := config.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	db, err := initDatabase(cfg)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	menuRepo := repository.NewPostgresMenuRepository(db, logger)
	discountRepo := repository.NewPostgresDiscountRepository(db, logger)
	cartRepo := repository.NewPostgresCartRepository(db, logger)
	orderRepo := repository.NewPostgresOrderRepository(db, logger)

	cache := repository.NewRedisCatalogCache(cfg.Redis, logger)
	defer cache.Close()

	publisher := events.NewKafkaPublisher(cfg.Kafka, logger)
	defer publisher.Close()

	invoiceClient := clients.NewHTTPInvoiceClient(cfg.InvoiceService, logger)
	notificationClient := clients.NewHTTPNotificationClient(cfg.NotificationService, logger)

	menuService := service.NewMenuService(menuRepo, cache, cfg, logger)
	cartService := service.NewCartService(cartRepo, menuService, logger)
	discountService := service.NewDiscountService(discountRepo, cache, cfg, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, discountService,
		publisher, notificationClient, cfg, logger)

	h := handlers.NewHandlers(menuService, cartService, discountService,
		orderService, invoiceClient, cfg, logger)
	srv := server.NewServer(cfg, h, logger)

	consumer := events.NewKafkaConsumer(cfg.Kafka, orderService, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start()
	})

	g.Go(func() error {
		if err := consumer.Start(gctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		consumer.Stop()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Fatalw("service exited", "error", err)
	}

	logger.Info("service stopped")
}

func initDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
