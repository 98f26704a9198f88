package handler

import (
	"ticket_master/constants"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

// Login checks credentials for the requested role and returns the user id.
func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	user, err := service.Authenticate(db(c), input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOGIN_SUCCESS, user.ID)
}
