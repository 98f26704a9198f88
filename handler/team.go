package handler

import (
	"fmt"
	"mime/multipart"
	"ticket_master/constants"
	"ticket_master/helper"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

var imageUploader helper.ImageUploader

func SetImageUploader(uploader helper.ImageUploader) {
	imageUploader = uploader
}

func GetTeams(c *fiber.Ctx) error {
	teams, err := service.GetTeams(db(c))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.TEAMS_FETCHED, teams)
}

func GetTeamById(c *fiber.Ctx) error {
	id, _ := inputId(c)
	team, err := service.GetTeamById(db(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.TEAM_FETCHED, team)
}

func GetTeamsBySportId(c *fiber.Ctx) error {
	sportId, _ := inputId(c)
	teams, err := service.GetTeamsBySportId(db(c), sportId)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.TEAMS_FETCHED, teams)
}

func CreateTeam(c *fiber.Ctx) error {
	input, ok := c.Locals("inputTeam").(model.TeamInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.CreateTeam(db(c), input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, constants.TEAM_CREATED, id)
}

func UpdateTeam(c *fiber.Ctx) error {
	id, _ := inputId(c)
	input, ok := c.Locals("inputTeam").(model.TeamInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, err := service.UpdateTeam(db(c), id, input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.TEAM_UPDATED, id)
}

func UploadTeamLogo(c *fiber.Ctx) error {
	id, _ := inputId(c)
	file, ok := c.Locals("inputLogo").(*multipart.FileHeader)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	if imageUploader == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.UPLOAD_DISABLED, helper.ErrUploadsDisabled)
	}
	if _, err := service.GetTeamById(db(c), id); err != nil {
		return serviceError(c, err)
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LOGO_INVALID, err)
	}
	defer reader.Close()

	url, err := imageUploader.Upload(c.UserContext(), reader, "teams", fmt.Sprintf("logo_%s_%d", id, time.Now().Unix()))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_INTERNAL_ERROR, err)
	}

	team, previous, err := service.SetTeamLogo(db(c), id, url)
	if err != nil {
		return serviceError(c, err)
	}
	if previous != "" {
		if err := imageUploader.Destroy(c.UserContext(), previous); err != nil {
			log.Warn().Err(err).Str("teamId", team.ID.String()).Msg("old logo left in storage")
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.TEAM_LOGO_UPDATED, url)
}
