package mocks

import (
	"context"

	"github.com/Behyna/sms-services/smsrelay/pkg/webhook"
	"github.com/stretchr/testify/mock"
)

type WebhookClient struct {
	mock.Mock
}

func (w *WebhookClient) Deliver(ctx context.Context, url string, request webhook.Request) error {
	args := w.Called(ctx, url, request)
	return args.Error(0)
}
