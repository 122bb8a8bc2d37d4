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

	"rich-catering-be/internal/booking"
	"rich-catering-be/internal/broker"
	"rich-catering-be/internal/config"
	"rich-catering-be/internal/db"
	"rich-catering-be/internal/handler"
	"rich-catering-be/internal/logger"
	"rich-catering-be/internal/middleware"
	"rich-catering-be/internal/notification"
	"rich-catering-be/internal/order"
	"rich-catering-be/internal/packages"
	"rich-catering-be/internal/report"
	"rich-catering-be/internal/user"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var database *sql.DB
	if cfg.StoreDriver == config.StorePostgres {
		database = db.InitDB(cfg)
		defer database.Close()
	}

	var publisher notification.Publisher
	if cfg.RabbitMQURL != "" {
		mq, err := broker.Connect(cfg.RabbitMQURL)
		if err != nil {
			// Delivery to the broker is optional; notifications are still stored.
			logger.L().Warn("rabbitmq unavailable, notifications will not be published", zap.Error(err))
		} else {
			defer mq.Close()
			publisher = mq.Publisher()
		}
	}

	h := buildHandler(cfg, database, publisher)
	limiter := middleware.NewRateLimiter(ctx)
	srv := newServer(cfg, handler.NewRouter(h, handler.RouterConfig{
		JWTSecret:  cfg.JWTSecret,
		CORSOrigin: cfg.CORSOrigin,
		Limiter:    limiter,
	}))

	go func() {
		logger.L().Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.StoreDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildHandler wires repositories and services. A nil database selects the
// in-memory store with the built-in package catalog.
func buildHandler(cfg *config.Config, database *sql.DB, publisher notification.Publisher) *handler.Handler {
	var (
		orderRepo   order.Repository
		bookingRepo booking.Repository
		notifRepo   notification.Repository
		catalog     packages.Repository
		admins      user.Directory
	)

	if database != nil {
		orderRepo = order.NewRepository(database)
		bookingRepo = booking.NewRepository(database)
		notifRepo = notification.NewRepository(database)
		catalog = packages.NewRepository(database)
		admins = user.NewRepository(database)
	} else {
		orderRepo = order.NewMemoryRepository()
		bookingRepo = booking.NewMemoryRepository()
		notifRepo = notification.NewMemoryRepository()
		catalog = packages.NewStaticRepository(packages.DefaultPackages()...)
		admins = user.NewStaticDirectory(cfg.AdminUserIDs...)
	}

	notifSvc := notification.NewService(notifRepo, admins, publisher)

	var quotes booking.QuoteVerifier
	if cfg.VerifyQuotes {
		quotes = packages.NewService(catalog)
	}

	orderSvc := order.NewService(orderRepo, notifSvc)
	bookingSvc := booking.NewService(bookingRepo, notifSvc, quotes)
	reportSvc := report.NewService(orderSvc, bookingSvc)

	return handler.NewHandler(orderSvc, bookingSvc, notifSvc, reportSvc)
}

func newServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
