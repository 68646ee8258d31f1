package mocks

import (
	"context"

	"github.com/Behyna/sms-services/smsrelay/internal/service"
	"github.com/stretchr/testify/mock"
)

type RelayService struct {
	mock.Mock
}

func (r *RelayService) Relay(ctx context.Context, cmd service.RelayMessageCommand) (service.RelayResponse, error) {
	args := r.Called(ctx, cmd)
	return args.Get(0).(service.RelayResponse), args.Error(1)
}
