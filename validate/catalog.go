package validate

import (
	"path/filepath"
	"slices"
	"strings"
	"ticket_master/constants"
	"ticket_master/model"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
)

func Sport() fiber.Handler {
	return body[model.SportInput]("inputSport")
}

func Team() fiber.Handler {
	return body[model.TeamInput]("inputTeam")
}

func Stadium() fiber.Handler {
	return body[model.StadiumInput]("inputStadium")
}

var logoExtensions = []string{".png", ".jpg", ".jpeg"}

// TeamLogo accepts a multipart "logo" file in PNG or JPEG format.
func TeamLogo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("logo")
		if err != nil || file == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LOGO_MISSING, err)
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !slices.Contains(logoExtensions, ext) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LOGO_INVALID, nil)
		}
		c.Locals("inputLogo", file)
		return c.Next()
	}
}
