package errors_test

import (
	stderrors "errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Behyna/sms-services/smsrelay/internal/constants"
	apperrors "github.com/Behyna/sms-services/smsrelay/internal/errors"
	"github.com/Behyna/sms-services/smsrelay/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "unauthorized service error",
			err:          service.NewServiceError(constants.ErrCodeUnauthorized, service.ErrUnauthorized),
			expectedCode: fiber.StatusUnauthorized,
			expectedBody: `{"status":"error","msg":"Unauthorized"}`,
		},
		{
			name:         "invalid body service error",
			err:          service.NewServiceError(constants.ErrCodeInvalidRequestBody, service.ErrInvalidBody),
			expectedCode: fiber.StatusBadRequest,
			expectedBody: `{"status":"error","msg":"request body must be a JSON object"}`,
		},
		{
			name:         "unknown service code",
			err:          service.NewServiceError("SOMETHING_ELSE", stderrors.New("boom")),
			expectedCode: fiber.StatusInternalServerError,
			expectedBody: `{"status":"error","msg":"Internal server error"}`,
		},
		{
			name:         "fiber error keeps its code",
			err:          fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed"),
			expectedCode: fiber.StatusMethodNotAllowed,
			expectedBody: `{"status":"error","msg":"Method Not Allowed"}`,
		},
		{
			name:         "plain error",
			err:          stderrors.New("boom"),
			expectedCode: fiber.StatusInternalServerError,
			expectedBody: `{"status":"error","msg":"Internal server error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler(zap.NewNop())})
			app.Get("/", func(c *fiber.Ctx) error { return tc.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedCode, resp.StatusCode)
			assert.JSONEq(t, tc.expectedBody, string(body))
		})
	}
}
