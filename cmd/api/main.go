package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/smsrelay/internal/api"
	v1 "github.com/Behyna/sms-services/smsrelay/internal/api/v1"
	"github.com/Behyna/sms-services/smsrelay/internal/config"
	"github.com/Behyna/sms-services/smsrelay/internal/metrics"
	"github.com/Behyna/sms-services/smsrelay/internal/service"
	"github.com/Behyna/sms-services/smsrelay/pkg/httpclient"
	"github.com/Behyna/sms-services/smsrelay/pkg/webhook"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const systemMetricsInterval = 15 * time.Second

func main() {
	fx.New(
		fx.Provide(
			zap.NewProduction,
			config.Load,
			func() prometheus.Registerer { return prometheus.DefaultRegisterer },
			func() prometheus.Gatherer { return prometheus.DefaultGatherer },
			metrics.NewMetrics,
			metrics.NewSystemCollector,
			newHTTPClient,
			webhook.NewClient,
			service.NewRouter,
			service.NewForwarder,
			service.NewRelayService,
			v1.NewHandler,
			api.NewApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func newHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Forwarder.Timeout)
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	gatherer prometheus.Gatherer, collector *metrics.SystemCollector, forwarder service.Forwarder,
	logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, gatherer, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(systemMetricsInterval)
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("Server stopped", zap.Error(err))
				}
			}()
			logger.Info("Server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer collector.Stop()
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			if err := forwarder.Wait(ctx); err != nil {
				logger.Warn("Pending forwards abandoned on shutdown", zap.Error(err))
			}
			_ = logger.Sync()
			return nil
		},
	})
}
