package service

import (
	"context"
	"sync"
	"time"

	"github.com/Behyna/sms-services/smsrelay/internal/config"
	"github.com/Behyna/sms-services/smsrelay/internal/metrics"
	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/Behyna/sms-services/smsrelay/pkg/webhook"
	"go.uber.org/zap"
)

type Target string

const (
	TargetClient Target = "client"
	TargetDebug  Target = "debug"
)

const (
	forwardResultDelivered = "delivered"
	forwardResultFailed    = "failed"
)

type Forwarder interface {
	// Forward starts a single delivery attempt in the background and returns
	// immediately. Failures are logged and dropped.
	Forward(envelope model.ForwardEnvelope, url string, target Target)
	// Wait blocks until every dispatched delivery has finished or ctx is done.
	Wait(ctx context.Context) error
}

type forwarder struct {
	client  webhook.Client
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewForwarder(client webhook.Client, cfg *config.Config, metrics *metrics.Metrics, logger *zap.Logger) Forwarder {
	return &forwarder{client: client, timeout: cfg.Forwarder.Timeout, metrics: metrics, logger: logger}
}

func (f *forwarder) Forward(envelope model.ForwardEnvelope, url string, target Target) {
	request := NewWebhookRequest(envelope)

	f.wg.Add(1)
	f.metrics.ForwardsInFlight.Inc()

	go func() {
		defer f.wg.Done()
		defer f.metrics.ForwardsInFlight.Dec()

		// The inbound request may already be answered; the delivery gets its own deadline.
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		defer cancel()

		start := time.Now()
		err := f.client.Deliver(ctx, url, request)
		duration := time.Since(start)

		if err != nil {
			f.metrics.RecordForward(string(target), forwardResultFailed, duration)
			f.logger.Error("Failed to forward message",
				zap.Error(err),
				zap.String("request_id", envelope.RequestID),
				zap.String("target", string(target)),
				zap.String("destination", url),
				zap.Duration("duration", duration))
			return
		}

		f.metrics.RecordForward(string(target), forwardResultDelivered, duration)
		f.logger.Info("Message forwarded",
			zap.String("request_id", envelope.RequestID),
			zap.String("target", string(target)),
			zap.String("destination", url),
			zap.Duration("duration", duration))
	}()
}

func (f *forwarder) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		f.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func NewWebhookRequest(envelope model.ForwardEnvelope) webhook.Request {
	tx := envelope.Transaction

	return webhook.Request{
		Source:                 envelope.Source,
		RequestID:              envelope.RequestID,
		Timestamp:              envelope.Timestamp.UTC().Format(time.RFC3339),
		OriginDevice:           envelope.OriginDevice,
		OriginalSender:         envelope.OriginalSender,
		ReceiverNumberReported: envelope.ReceiverNumberReported,
		Transaction: webhook.Transaction{
			Provider:           string(tx.Provider),
			TransactionType:    string(tx.TransactionType),
			Amount:             tx.Amount.InexactFloat64(),
			Sender:             tx.Sender,
			Receiver:           tx.Receiver,
			TransactionID:      tx.TransactionID,
			Valid:              tx.Valid,
			RawText:            tx.RawText,
			NormalizedReceiver: tx.NormalizedReceiver,
		},
	}
}
