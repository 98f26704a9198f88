package handler

import (
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

func GetStatistics(c *fiber.Ctx) error {
	stats, err := service.GetStatistics(db(c))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Statistics fetched successfully", stats)
}
