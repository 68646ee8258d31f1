package service

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/smsrelay/internal/config"
	"github.com/Behyna/sms-services/smsrelay/internal/constants"
	"github.com/Behyna/sms-services/smsrelay/internal/metrics"
	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	resolutionExact   = "exact"
	resolutionPartial = "partial"
	resolutionDebug   = "debug"
	resolutionNone    = "none"
	resolutionSkipped = "skipped"
)

type RelayService interface {
	Relay(ctx context.Context, cmd RelayMessageCommand) (RelayResponse, error)
}

type relay struct {
	router     Router
	forwarder  Forwarder
	debugRoute string
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

func NewRelayService(router Router, forwarder Forwarder, cfg *config.Config, metrics *metrics.Metrics,
	logger *zap.Logger) RelayService {
	return &relay{
		router:     router,
		forwarder:  forwarder,
		debugRoute: cfg.DebugRoute,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Relay classifies one SMS, resolves where it belongs and dispatches it.
// Only records that reach a client route are reported as success; anything
// else is ignored, after an optional copy to the debug route.
func (r *relay) Relay(ctx context.Context, cmd RelayMessageCommand) (RelayResponse, error) {
	requestID, err := uuid.NewRandom()
	if err != nil {
		r.logger.Error("Failed to generate request id", zap.Error(err))
		return RelayResponse{}, NewServiceError(constants.ErrCodeInternalError, ErrRequestID)
	}

	tx := Classify(cmd.Text, cmd.Sender, cmd.MyNumber)
	r.metrics.RecordClassification(string(tx.Provider), string(tx.TransactionType), tx.Valid)

	logger := r.logger.With(
		zap.String("request_id", requestID.String()),
		zap.String("device", cmd.OriginDevice),
		zap.String("provider", string(tx.Provider)),
		zap.String("transaction_type", string(tx.TransactionType)),
		zap.Bool("valid", tx.Valid))

	var (
		route    Route
		resolved bool
	)
	if tx.Routable() {
		route, resolved = r.router.Resolve(tx.Receiver)
		if resolved && !route.Exact {
			tx.NormalizedReceiver = route.Key
		}
	}

	envelope := model.ForwardEnvelope{
		Source:                 model.EnvelopeSource,
		RequestID:              requestID.String(),
		Timestamp:              r.now(),
		OriginDevice:           cmd.OriginDevice,
		OriginalSender:         cmd.Sender,
		ReceiverNumberReported: cmd.MyNumber,
		Transaction:            tx,
	}

	response := RelayResponse{Status: constants.StatusIgnored, Parsed: tx.Valid, Transaction: tx}

	switch {
	case resolved:
		r.recordResolution(route)
		logger.Info("Forwarding message to client route",
			zap.String("receiver", tx.Receiver),
			zap.String("route_key", route.Key),
			zap.Bool("exact", route.Exact),
			zap.String("destination", route.URL))

		r.forwarder.Forward(envelope, route.URL, TargetClient)
		response.Status = constants.StatusSuccess
		response.Destination = route.URL

	case r.debugRoute != "":
		r.metrics.RecordRouteResolution(resolutionDebug)
		logger.Warn("No client route, forwarding to debug route",
			zap.String("receiver", tx.Receiver),
			zap.String("destination", r.debugRoute))

		r.forwarder.Forward(envelope, r.debugRoute, TargetDebug)
		response.Destination = r.debugRoute

	case tx.Routable():
		r.metrics.RecordRouteResolution(resolutionNone)
		logger.Warn("No route for receiver, dropping message", zap.String("receiver", tx.Receiver))

	default:
		r.metrics.RecordRouteResolution(resolutionSkipped)
		logger.Info("Message not parsed, ignoring")
	}

	return response, nil
}

func (r *relay) recordResolution(route Route) {
	if route.Exact {
		r.metrics.RecordRouteResolution(resolutionExact)
		return
	}
	r.metrics.RecordRouteResolution(resolutionPartial)
}
