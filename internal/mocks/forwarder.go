package mocks

import (
	"context"

	"github.com/Behyna/sms-services/smsrelay/internal/model"
	"github.com/Behyna/sms-services/smsrelay/internal/service"
	"github.com/stretchr/testify/mock"
)

type Forwarder struct {
	mock.Mock
}

func (f *Forwarder) Forward(envelope model.ForwardEnvelope, url string, target service.Target) {
	f.Called(envelope, url, target)
}

func (f *Forwarder) Wait(ctx context.Context) error {
	args := f.Called(ctx)
	return args.Error(0)
}
