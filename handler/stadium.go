package handler

import (
	"ticket_master/constants"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

func GetStadiums(c *fiber.Ctx) error {
	stadiums, err := service.GetStadiums(db(c))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.STADIUMS_FETCHED, stadiums)
}

func GetStadiumById(c *fiber.Ctx) error {
	id, _ := inputId(c)
	stadium, err := service.GetStadiumById(db(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.STADIUM_FETCHED, stadium)
}

func CreateStadium(c *fiber.Ctx) error {
	input, ok := c.Locals("inputStadium").(model.StadiumInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.CreateStadium(db(c), input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, constants.STADIUM_CREATED, id)
}

func UpdateStadium(c *fiber.Ctx) error {
	id, _ := inputId(c)
	input, ok := c.Locals("inputStadium").(model.StadiumInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.UpdateStadium(db(c), id, input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.STADIUM_UPDATED, id)
}
