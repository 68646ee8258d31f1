package errors

import (
	"errors"

	"github.com/Behyna/sms-services/smsrelay/internal/constants"
	"github.com/Behyna/sms-services/smsrelay/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Response struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(Response{Status: constants.StatusError, Msg: fiberErr.Message})
		}

		logger.Error("Unhandled error while processing request",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()))

		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Status: constants.StatusError,
			Msg:    constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == fiber.StatusInternalServerError {
		errorCode = constants.ErrCodeInternalError
	}

	return c.Status(status).JSON(Response{
		Status: constants.StatusError,
		Msg:    constants.GetErrorMessage(errorCode),
	})
}
