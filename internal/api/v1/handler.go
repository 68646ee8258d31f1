package v1

import (
	"bytes"
	"encoding/json"

	"github.com/Behyna/sms-services/smsrelay/internal/config"
	"github.com/Behyna/sms-services/smsrelay/internal/constants"
	"github.com/Behyna/sms-services/smsrelay/internal/metrics"
	"github.com/Behyna/sms-services/smsrelay/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger  *zap.Logger
	tokens  config.TokenTable
	service service.RelayService
	metrics *metrics.Metrics
}

func NewHandler(logger *zap.Logger, cfg *config.Config, service service.RelayService, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, tokens: cfg.Tokens, service: service, metrics: metrics}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// Webhook accepts one forwarded SMS. Anything past authorization and body
// decoding answers 200 so the gateway app does not retry.
func (h *Handler) Webhook(c *fiber.Ctx) error {
	device, ok := h.tokens.Get(c.Params("token"))
	if !ok {
		h.logger.Warn("Rejected webhook with unknown token", zap.String("ip", c.IP()))
		h.metrics.RecordWebhook(constants.ErrCodeUnauthorized)
		return service.NewServiceError(constants.ErrCodeUnauthorized, service.ErrUnauthorized)
	}

	body, err := decodeBody(c.Body())
	if err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("device", device),
			zap.ByteString("body", c.Body()))
		h.metrics.RecordWebhook(constants.ErrCodeInvalidRequestBody)
		return service.NewServiceError(constants.ErrCodeInvalidRequestBody, err)
	}

	msg := NewInboundMessage(body)

	h.logger.Info("SMS received",
		zap.String("device", device),
		zap.String("sender", msg.Sender),
		zap.String("my_number", msg.MyNumber),
		zap.Int("text_length", len(msg.Text)))

	cmd := service.RelayMessageCommand{
		Text:         msg.Text,
		Sender:       msg.Sender,
		MyNumber:     msg.MyNumber,
		OriginDevice: device,
	}

	resp, err := h.service.Relay(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Failed to relay message",
			zap.Error(err),
			zap.String("device", device),
			zap.String("sender", msg.Sender))
		h.metrics.RecordWebhook(constants.StatusError)
		return err
	}

	h.metrics.RecordWebhook(resp.Status)

	return c.Status(fiber.StatusOK).JSON(WebhookResponse{Status: resp.Status, Parsed: resp.Parsed})
}

func decodeBody(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, service.ErrInvalidBody
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, service.ErrInvalidBody
	}
	return body, nil
}
