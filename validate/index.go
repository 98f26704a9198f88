package validate

import (
	"ticket_master/constants"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetById parses the uuid route param key into Locals("inputId").
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_UUID, err)
		}
		c.Locals("inputId", id)
		return c.Next()
	}
}

// body parses and validates the request body as T and stores it in Locals(local).
func body[T any](local string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := utils.Validator().Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err), err)
		}
		c.Locals(local, input)
		return c.Next()
	}
}
