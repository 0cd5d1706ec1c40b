package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/CynthiaM111/weshare-sub002/internal/broker"
	"github.com/CynthiaM111/weshare-sub002/internal/config"
	"github.com/CynthiaM111/weshare-sub002/internal/handler"
	"github.com/CynthiaM111/weshare-sub002/internal/metrics"
	"github.com/CynthiaM111/weshare-sub002/internal/middleware"
	"github.com/CynthiaM111/weshare-sub002/internal/notification"
	"github.com/CynthiaM111/weshare-sub002/internal/router"
	"github.com/CynthiaM111/weshare-sub002/internal/scheduler"
	"github.com/CynthiaM111/weshare-sub002/internal/service"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
	"github.com/CynthiaM111/weshare-sub002/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type publisher interface {
	ports.EventPublisher
	Close() error
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	stores     *storage.Stores
	publisher  publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"WeShare",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	stores, err := storage.Open(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	app.stores = stores

	if err = app.initBroker(); err != nil {
		return nil, fmt.Errorf("init broker: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initBroker() error {
	if !a.cfg.RabbitMQ.Enabled {
		a.publisher = broker.NoopPublisher{}
		return nil
	}

	p, err := broker.NewRabbitPublisher(a.cfg.RabbitMQ, a.log)
	if err != nil {
		return err
	}
	a.publisher = p

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "rabbitmq connected",
		logger.String("exchange", a.cfg.RabbitMQ.Exchange),
	)
	return nil
}

func (a *App) initServices() error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry, a.cfg.Metrics.Path)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	categoryService := service.NewCategoryService(a.stores.Categories)
	userService := service.NewUserService(a.stores.Users)
	rideService := service.NewRideService(
		a.stores.Rides, a.stores.Categories, a.stores.Users, n, a.publisher, m, a.log,
	)
	bookingService := service.NewBookingService(
		a.stores.Rides, a.stores.Users, n, a.publisher, m, a.log,
	)

	a.scheduler = scheduler.New(
		rideService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	opts := router.Options{MetricsPath: a.cfg.Metrics.Path}
	if a.cfg.Metrics.Enabled {
		opts.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}
	mw := httpMiddleware(a.log, m, a.cfg.Metrics.Enabled)

	h := handler.NewHandler(categoryService, rideService, bookingService, userService)
	r := router.InitRouter(a.cfg.Gin.Mode, h, opts, mw...)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// httpMiddleware builds the request chain. Metrics wrap Recovery so that
// panics are counted as 500s.
func httpMiddleware(log logger.Logger, m *metrics.Metrics, withMetrics bool) []ginext.HandlerFunc {
	mw := []ginext.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(log),
	}
	if withMetrics {
		mw = append(mw, m.Middleware())
	}
	return append(mw, middleware.Recovery(log))
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.stores.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.Error("failed to close publisher", logger.String("error", err.Error()))
	}

	if err := a.stores.Close(shutdownCtx); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage closed",
		logger.String("driver", a.stores.Driver),
	)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
