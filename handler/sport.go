package handler

import (
	"ticket_master/constants"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

func GetSports(c *fiber.Ctx) error {
	sports, err := service.GetSports(db(c))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.SPORTS_FETCHED, sports)
}

func GetSportById(c *fiber.Ctx) error {
	id, _ := inputId(c)
	sport, err := service.GetSportById(db(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.SPORT_FETCHED, sport)
}

func CreateSport(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSport").(model.SportInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.CreateSport(db(c), input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, constants.SPORT_CREATED, id)
}

func UpdateSport(c *fiber.Ctx) error {
	id, _ := inputId(c)
	input, ok := c.Locals("inputSport").(model.SportInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.UpdateSport(db(c), id, input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.SPORT_UPDATED, id)
}
