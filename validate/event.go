package validate

import (
	"ticket_master/model"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return body[model.CreateEventInput]("inputCreateEvent")
}

func UpdateEvent() fiber.Handler {
	return body[model.UpdateEventInput]("inputUpdateEvent")
}

func CreateReservation() fiber.Handler {
	return body[model.ReservationInput]("inputReservation")
}
