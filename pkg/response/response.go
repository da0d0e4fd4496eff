package response

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/lingnite/user-service/internal/errors"
)

// Envelope is the uniform body every endpoint returns.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Code:    apperrors.CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// ErrorHandler is installed as the fiber error handler. It is the single
// place where error kind becomes HTTP status + business code; raw errors
// never reach the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperrors.AsError(err); ok {
		return c.Status(appErr.HTTPStatus).JSON(Envelope{
			Code:    appErr.Code,
			Message: appErr.Message,
		})
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return c.Status(fiberErr.Code).JSON(Envelope{
			Code:    fiberErr.Code,
			Message: fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Code:    fiber.StatusInternalServerError,
		Message: "internal server error",
	})
}
