package web

import (
	"errors"
	"ticket_master/handler"
	"ticket_master/middleware"
	"ticket_master/model"
	"ticket_master/service"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// StudentHome lists upcoming events that still have seats.
func StudentHome(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	events, err := service.GetUpcomingEvents(db(c), time.Now())
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "student_home", Page{
		Title: "Upcoming events",
		User:  &user,
		Data:  map[string]any{"Events": events},
	})
}

func myEventsPage(c *fiber.Ctx, user model.User, status int, alert, notice string) error {
	reservations, err := service.GetReservationsByStudentId(db(c), user.ID, false)
	if err != nil {
		return err
	}
	return render(c, status, "my_events", Page{
		Title:  "My events",
		User:   &user,
		Alert:  alert,
		Notice: notice,
		Data:   map[string]any{"Reservations": reservations},
	})
}

func MyEvents(c *fiber.Ctx) error {
	return myEventsPage(c, middleware.CurrentUser(c), fiber.StatusOK, "", "")
}

// ReserveSeat books a seat at the submitted event for the signed-in student.
func ReserveSeat(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	eventId, err := uuid.Parse(c.FormValue("eventId"))
	if err != nil {
		return myEventsPage(c, user, fiber.StatusBadRequest, "Choose an event to reserve", "")
	}
	reservation, err := service.CreateReservation(db(c), model.ReservationInput{EventId: eventId, StudentId: user.ID})
	if err != nil {
		return businessError(c, err, func(status int, message string) error {
			return myEventsPage(c, user, status, message, "")
		})
	}
	return myEventsPage(c, user, fiber.StatusOK, "", "Seat "+reservation.SeatNumber+" reserved")
}

func CancelMyReservation(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return myEventsPage(c, user, fiber.StatusBadRequest, "Unknown reservation", "")
	}
	if _, err := service.CancelStudentReservation(db(c), user.ID, id); err != nil {
		return businessError(c, err, func(status int, message string) error {
			return myEventsPage(c, user, status, message, "")
		})
	}
	return c.Redirect("/my-events", fiber.StatusFound)
}

// businessError shows service errors as an alert and lets anything else reach the error handler.
func businessError(c *fiber.Ctx, err error, show func(status int, message string) error) error {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return err
	}
	return show(handler.StatusFor(err), svcErr.Message)
}
