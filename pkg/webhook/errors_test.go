package webhook_test

import (
	"testing"

	"github.com/Behyna/sms-services/smsrelay/pkg/webhook"
	"github.com/stretchr/testify/assert"
)

func TestMapStatusToError(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		expectedError error
	}{
		{name: "OK", statusCode: 200, expectedError: nil},
		{name: "Accepted", statusCode: 202, expectedError: nil},
		{name: "NoContent", statusCode: 204, expectedError: nil},
		{name: "Redirect", statusCode: 302, expectedError: webhook.ErrServerError},
		{name: "BadRequest", statusCode: 400, expectedError: webhook.ErrRejected},
		{name: "NotFound", statusCode: 404, expectedError: webhook.ErrRejected},
		{name: "InternalServerError", statusCode: 500, expectedError: webhook.ErrServerError},
		{name: "BadGateway", statusCode: 502, expectedError: webhook.ErrServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := webhook.MapStatusToError(tc.statusCode)

			assert.Equal(t, tc.expectedError, err)
		})
	}
}
