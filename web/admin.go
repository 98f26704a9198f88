package web

import (
	"strconv"
	"strings"
	"ticket_master/middleware"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func AdminHome(c *fiber.Ctx) error {
	return c.Redirect("/admin/stadiums", fiber.StatusFound)
}

// optionalId reads an id posted to switch a create form into an edit.
func optionalId(c *fiber.Ctx, key string) (uuid.UUID, bool, error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, true, &service.Error{Kind: service.ErrNotFound, Message: "Record not found"}
	}
	return id, true, nil
}

func adminPage(c *fiber.Ctx, status int, name, title string, page Page, data map[string]any) error {
	user := middleware.CurrentUser(c)
	page.Title = title
	page.User = &user
	page.Data = data
	return render(c, status, name, page)
}

func stadiumsPage(c *fiber.Ctx, status int, page Page) error {
	stadiums, err := service.GetStadiums(db(c))
	if err != nil {
		return err
	}
	return adminPage(c, status, "admin_stadiums", "Stadiums", page, map[string]any{"Stadiums": stadiums})
}

func AdminStadiums(c *fiber.Ctx) error {
	return stadiumsPage(c, fiber.StatusOK, Page{})
}

func SaveStadium(c *fiber.Ctx) error {
	page := Page{Form: formValues(c, "stadiumId", "name", "address", "capacity")}
	capacity, err := strconv.Atoi(strings.TrimSpace(page.Form["capacity"]))
	if err != nil {
		page.Errors = map[string]string{"capacity": "capacity must be a whole number"}
		return stadiumsPage(c, fiber.StatusBadRequest, page)
	}
	input := model.StadiumInput{Name: page.Form["name"], Address: page.Form["address"], Capacity: capacity}
	if err := utils.Validator().Struct(input); err != nil {
		page.Errors = fieldErrors(err)
		return stadiumsPage(c, fiber.StatusBadRequest, page)
	}

	id, editing, err := optionalId(c, "stadiumId")
	if err == nil {
		if editing {
			_, err = service.UpdateStadium(db(c), id, input)
		} else {
			_, err = service.CreateStadium(db(c), input)
		}
	}
	if err != nil {
		return businessError(c, err, func(status int, message string) error {
			page.Alert = message
			return stadiumsPage(c, status, page)
		})
	}
	return c.Redirect("/admin/stadiums", fiber.StatusFound)
}

func sportsPage(c *fiber.Ctx, status int, page Page) error {
	sports, err := service.GetSports(db(c))
	if err != nil {
		return err
	}
	return adminPage(c, status, "admin_sports", "Sports", page, map[string]any{"Sports": sports})
}

func AdminSports(c *fiber.Ctx) error {
	return sportsPage(c, fiber.StatusOK, Page{})
}

func SaveSport(c *fiber.Ctx) error {
	page := Page{Form: formValues(c, "sportId", "name", "description")}
	input := model.SportInput{Name: page.Form["name"], Description: page.Form["description"]}
	if err := utils.Validator().Struct(input); err != nil {
		page.Errors = fieldErrors(err)
		return sportsPage(c, fiber.StatusBadRequest, page)
	}

	id, editing, err := optionalId(c, "sportId")
	if err == nil {
		if editing {
			_, err = service.UpdateSport(db(c), id, input)
		} else {
			_, err = service.CreateSport(db(c), input)
		}
	}
	if err != nil {
		return businessError(c, err, func(status int, message string) error {
			page.Alert = message
			return sportsPage(c, status, page)
		})
	}
	return c.Redirect("/admin/sports", fiber.StatusFound)
}

func teamsPage(c *fiber.Ctx, status int, page Page) error {
	teams, err := service.GetTeams(db(c))
	if err != nil {
		return err
	}
	sports, err := service.GetSports(db(c))
	if err != nil {
		return err
	}
	return adminPage(c, status, "admin_teams", "Teams", page, map[string]any{"Teams": teams, "Sports": sports})
}

func AdminTeams(c *fiber.Ctx) error {
	return teamsPage(c, fiber.StatusOK, Page{})
}

func SaveTeam(c *fiber.Ctx) error {
	page := Page{Form: formValues(c, "teamId", "name", "sportId")}
	sportId, err := uuid.Parse(page.Form["sportId"])
	if err != nil {
		page.Errors = map[string]string{"sportId": "sportId is required"}
		return teamsPage(c, fiber.StatusBadRequest, page)
	}
	input := model.TeamInput{Name: page.Form["name"], SportId: sportId}
	if err := utils.Validator().Struct(input); err != nil {
		page.Errors = fieldErrors(err)
		return teamsPage(c, fiber.StatusBadRequest, page)
	}

	id, editing, err := optionalId(c, "teamId")
	if err == nil {
		if editing {
			_, err = service.UpdateTeam(db(c), id, input)
		} else {
			_, err = service.CreateTeam(db(c), input)
		}
	}
	if err != nil {
		return businessError(c, err, func(status int, message string) error {
			page.Alert = message
			return teamsPage(c, status, page)
		})
	}
	return c.Redirect("/admin/teams", fiber.StatusFound)
}

func organizersPage(c *fiber.Ctx, status int, page Page) error {
	organizers, err := service.GetUsersByRole(db(c), model.RoleOrganizer)
	if err != nil {
		return err
	}
	return adminPage(c, status, "admin_organizers", "Organizers", page, map[string]any{"Organizers": organizers})
}

func AdminOrganizers(c *fiber.Ctx) error {
	return organizersPage(c, fiber.StatusOK, Page{})
}

func CreateOrganizer(c *fiber.Ctx) error {
	page := Page{Form: formValues(c, "name", "email")}
	input := model.CreateUserInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: strings.TrimSpace(c.FormValue("password")),
		Role:     model.RoleOrganizer,
	}
	if err := utils.Validator().Struct(input); err != nil {
		page.Errors = fieldErrors(err)
		return organizersPage(c, fiber.StatusBadRequest, page)
	}
	if _, err := service.CreateUser(db(c), input); err != nil {
		return businessError(c, err, func(status int, message string) error {
			page.Alert = message
			return organizersPage(c, status, page)
		})
	}
	return c.Redirect("/admin/organizers", fiber.StatusFound)
}

// ToggleOrganizer activates or deactivates an organizer account.
func ToggleOrganizer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return organizersPage(c, fiber.StatusBadRequest, Page{Alert: "Unknown organizer"})
	}
	organizer, err := service.GetUserById(db(c), id)
	if err == nil && organizer.Role != model.RoleOrganizer {
		return organizersPage(c, fiber.StatusBadRequest, Page{Alert: "Only organizer accounts can be changed here"})
	}
	if err == nil {
		_, err = service.SetUserActive(db(c), id, c.FormValue("isActive") == "true")
	}
	if err != nil {
		return businessError(c, err, func(status int, message string) error {
			return organizersPage(c, status, Page{Alert: message})
		})
	}
	return c.Redirect("/admin/organizers", fiber.StatusFound)
}
