package api

import (
	"github.com/Behyna/sms-services/smsrelay/internal/api/v1"
	"github.com/Behyna/sms-services/smsrelay/internal/constants"
	apperrors "github.com/Behyna/sms-services/smsrelay/internal/errors"
	"github.com/Behyna/sms-services/smsrelay/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               constants.ServiceName,
		DisableStartupMessage: true,
		ErrorHandler:          apperrors.ErrorHandler(logger),
	})
}

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer,
	logger *zap.Logger) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	app.Use(recover.New())
	app.Use(metrics.HealthCheckMiddleware(constants.ServiceName))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Post("/webhook/:token?", handler.Webhook)
}
