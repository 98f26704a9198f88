package handler

import (
	"errors"
	"ticket_master/constants"
	"ticket_master/database"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func db(c *fiber.Ctx) *gorm.DB {
	return database.DB.WithContext(c.UserContext())
}

func inputId(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals("inputId").(uuid.UUID)
	return id, ok
}

// serviceError answers with the status matching err's kind.
func serviceError(c *fiber.Ctx, err error) error {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.ErrorResponse(c, StatusFor(err), svcErr.Message, err)
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicate),
		errors.Is(err, service.ErrNoSeatsAvailable),
		errors.Is(err, service.ErrAlreadyCancelled):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidReference),
		errors.Is(err, service.ErrSameTeams):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInactiveAccount):
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler renders errors that escape handlers as an envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := constants.ERROR_INTERNAL_ERROR
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code == fiber.StatusNotFound {
			message = constants.NOT_FOUND_ROUTE
		} else if code < fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}
	return utils.ErrorResponse(c, code, message, err)
}

func NotFound(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_ROUTE, nil)
}
