package utils

import (
	"ticket_master/model"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorResponse writes a failed envelope. err is logged, never sent to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		event := log.Debug()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).Str("method", c.Method()).Str("path", c.Path()).Int("status", status).Msg(message)
	}
	return c.Status(status).JSON(model.Envelope{
		Data:    nil,
		Message: message,
		Success: false,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(model.Envelope{
		Data:    data,
		Message: message,
		Success: true,
	})
}

func Ptr[T any](v T) *T {
	return &v
}
