package web

import (
	"strings"
	"ticket_master/middleware"
	"ticket_master/model"
	"ticket_master/service"
	"ticket_master/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var eventFormFields = []string{"eventId", "name", "description", "startDateTime", "endDateTime", "sportId", "stadiumId", "teamOneId", "teamTwoId"}

func organizerPage(c *fiber.Ctx, user model.User, status int, page Page) error {
	events, err := service.GetEvents(db(c), model.EventFilter{OrganizerId: user.ID})
	if err != nil {
		return err
	}
	sports, err := service.GetSports(db(c))
	if err != nil {
		return err
	}
	teams, err := service.GetTeams(db(c))
	if err != nil {
		return err
	}
	stadiums, err := service.GetStadiums(db(c))
	if err != nil {
		return err
	}
	page.Title = "My organized events"
	page.User = &user
	page.Data = map[string]any{
		"Events":   events,
		"Sports":   sports,
		"Teams":    teams,
		"Stadiums": stadiums,
	}
	return render(c, status, "organizer", page)
}

func OrganizerHome(c *fiber.Ctx) error {
	return organizerPage(c, middleware.CurrentUser(c), fiber.StatusOK, Page{})
}

// SaveEvent creates an event, or edits one when eventId is posted.
func SaveEvent(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	page := Page{Form: formValues(c, eventFormFields...)}
	errs := map[string]string{}

	parseId := func(key string) uuid.UUID {
		id, err := uuid.Parse(page.Form[key])
		if err != nil {
			errs[key] = key + " is required"
		}
		return id
	}
	parseTime := func(key string) time.Time {
		t, err := time.ParseInLocation(dateTimeInput, page.Form[key], time.Local)
		if err != nil {
			errs[key] = key + " is required"
		}
		return t
	}

	start := parseTime("startDateTime")
	end := parseTime("endDateTime")

	if eventId := strings.TrimSpace(page.Form["eventId"]); eventId != "" {
		id := parseId("eventId")
		input := model.UpdateEventInput{
			Name:          page.Form["name"],
			Description:   page.Form["description"],
			StartDateTime: start,
			EndDateTime:   end,
		}
		if !validEventForm(input, errs) {
			page.Errors = errs
			return organizerPage(c, user, fiber.StatusBadRequest, page)
		}
		_, err := service.GetOrganizerEvent(db(c), user.ID, id)
		if err == nil {
			_, err = service.UpdateEvent(db(c), id, input)
		}
		if err != nil {
			return businessError(c, err, func(status int, message string) error {
				page.Alert = message
				return organizerPage(c, user, status, page)
			})
		}
		return c.Redirect("/organizer", fiber.StatusFound)
	}

	input := model.CreateEventInput{
		Name:          page.Form["name"],
		Description:   page.Form["description"],
		StartDateTime: start,
		EndDateTime:   end,
		SportId:       parseId("sportId"),
		StadiumId:     parseId("stadiumId"),
		TeamOneId:     parseId("teamOneId"),
		TeamTwoId:     parseId("teamTwoId"),
		OrganizerId:   user.ID,
	}
	if !validEventForm(input, errs) {
		page.Errors = errs
		return organizerPage(c, user, fiber.StatusBadRequest, page)
	}
	if _, err := service.CreateEvent(db(c), input); err != nil {
		return businessError(c, err, func(status int, message string) error {
			page.Alert = message
			return organizerPage(c, user, status, page)
		})
	}
	return c.Redirect("/organizer", fiber.StatusFound)
}

// validEventForm adds validator messages to errs without overwriting parse errors.
func validEventForm(input any, errs map[string]string) bool {
	if err := utils.Validator().Struct(input); err != nil {
		for field, message := range utils.FieldErrors(err) {
			if _, exists := errs[field]; !exists {
				errs[field] = message
			}
		}
	}
	return len(errs) == 0
}
