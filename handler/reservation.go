package handler

import (
	"ticket_master/constants"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

func GetReservationsByEventId(c *fiber.Ctx) error {
	return reservationsByEvent(c, false)
}

func GetActiveReservationsByEventId(c *fiber.Ctx) error {
	return reservationsByEvent(c, true)
}

func reservationsByEvent(c *fiber.Ctx, activeOnly bool) error {
	eventId, _ := inputId(c)
	reservations, err := service.GetReservationsByEventId(db(c), eventId, activeOnly)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.RESERVATIONS_FETCHED, reservations)
}

func GetReservationsByStudentId(c *fiber.Ctx) error {
	return reservationsByStudent(c, false)
}

func GetActiveReservationsByStudentId(c *fiber.Ctx) error {
	return reservationsByStudent(c, true)
}

func reservationsByStudent(c *fiber.Ctx, activeOnly bool) error {
	studentId, _ := inputId(c)
	reservations, err := service.GetReservationsByStudentId(db(c), studentId, activeOnly)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.RESERVATIONS_FETCHED, reservations)
}

func CreateReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputReservation").(model.ReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	reservation, err := service.CreateReservation(db(c), input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, constants.RESERVATION_CREATED, reservation.ID)
}

func CancelReservation(c *fiber.Ctx) error {
	id, _ := inputId(c)
	reservation, err := service.CancelReservation(db(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.RESERVATION_CANCELLED, reservation.ID)
}

// GetReservationQR renders the reservation ticket as a PNG QR code.
func GetReservationQR(c *fiber.Ctx) error {
	id, _ := inputId(c)
	reservation, err := service.GetReservationById(db(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	slug := ""
	if reservation.Event != nil {
		slug = reservation.Event.Slug
	}
	png, err := utils.GenerateQRCode(utils.ReservationQRContent(reservation.ID.String(), slug, reservation.SeatNumber), 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
