package handler

import (
	"ticket_master/constants"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

func GetUsers(c *fiber.Ctx) error {
	users, err := service.GetUsers(db(c))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.USERS_FETCHED, users)
}

func GetUserById(c *fiber.Ctx) error {
	id, _ := inputId(c)
	user, err := service.GetUserById(db(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.USER_FETCHED, user)
}

func CreateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateUser").(model.CreateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.CreateUser(db(c), input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, constants.USER_CREATED, id)
}

func UpdateUser(c *fiber.Ctx) error {
	id, _ := inputId(c)
	input, ok := c.Locals("inputUpdateUser").(model.UpdateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.UpdateUser(db(c), id, input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.USER_UPDATED, id)
}

func ActiveUser(c *fiber.Ctx) error {
	id, _ := inputId(c)
	input, ok := c.Locals("inputUserActive").(model.UserActiveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.SetUserActive(db(c), id, *input.IsActive)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.USER_ACTIVE_UPDATED, id)
}
