package handler

import (
	"ticket_master/constants"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

func GetEvents(c *fiber.Ctx) error {
	return listEvents(c, model.EventFilter{})
}

func GetEventsBySportId(c *fiber.Ctx) error {
	id, _ := inputId(c)
	return listEvents(c, model.EventFilter{SportId: id})
}

func GetEventsByOrganizerId(c *fiber.Ctx) error {
	id, _ := inputId(c)
	return listEvents(c, model.EventFilter{OrganizerId: id})
}

func GetEventsByTeamId(c *fiber.Ctx) error {
	id, _ := inputId(c)
	return listEvents(c, model.EventFilter{TeamId: id})
}

func GetEventsByStadiumId(c *fiber.Ctx) error {
	id, _ := inputId(c)
	return listEvents(c, model.EventFilter{StadiumId: id})
}

func listEvents(c *fiber.Ctx, filter model.EventFilter) error {
	events, err := service.GetEvents(db(c), filter)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.EVENTS_FETCHED, events)
}

func GetEventById(c *fiber.Ctx) error {
	id, _ := inputId(c)
	event, err := service.GetEventById(db(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.EVENT_FETCHED, event)
}

func GetEventBySlug(c *fiber.Ctx) error {
	event, err := service.GetEventBySlug(db(c), c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.EVENT_FETCHED, event)
}

func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateEvent").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.CreateEvent(db(c), input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, constants.EVENT_CREATED, id)
}

func UpdateEvent(c *fiber.Ctx) error {
	id, _ := inputId(c)
	input, ok := c.Locals("inputUpdateEvent").(model.UpdateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.UpdateEvent(db(c), id, input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.EVENT_UPDATED, id)
}
