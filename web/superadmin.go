package web

import (
	"ticket_master/middleware"
	"ticket_master/service"

	"github.com/gofiber/fiber/v2"
)

func SuperAdminHome(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	stats, err := service.GetStatistics(db(c))
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "super_admin", Page{
		Title: "Overview",
		User:  &user,
		Data:  map[string]any{"Stats": stats},
	})
}
