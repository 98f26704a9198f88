package router

import (
	"ticket_master/handler"
	"ticket_master/middleware"
	"ticket_master/model"
	"ticket_master/validate"
	"ticket_master/web"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	setupApiRoutes(app)
	setupWebRoutes(app)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events/:id/availability", websocket.New(handler.AvailabilityStream))

	app.Use(handler.NotFound)
}

func setupApiRoutes(app *fiber.App) {
	sport := app.Group("/Sport", logger.New())
	sport.Get("/GetAll", handler.GetSports)
	sport.Get("/:id", validate.GetById("id"), handler.GetSportById)
	sport.Post("/", validate.Sport(), handler.CreateSport)
	sport.Put("/:id", validate.GetById("id"), validate.Sport(), handler.UpdateSport)

	team := app.Group("/Team", logger.New())
	team.Get("/GetAll", handler.GetTeams)
	team.Get("/GetById/:id", validate.GetById("id"), handler.GetTeamById)
	team.Get("/GetTeamsBySportId/:sportId", validate.GetById("sportId"), handler.GetTeamsBySportId)
	team.Post("/", validate.Team(), handler.CreateTeam)
	team.Put("/:id", validate.GetById("id"), validate.Team(), handler.UpdateTeam)
	team.Post("/:id/logo", validate.GetById("id"), validate.TeamLogo(), handler.UploadTeamLogo)

	stadium := app.Group("/Stadium", logger.New())
	stadium.Get("/GetAll", handler.GetStadiums)
	stadium.Get("/:id", validate.GetById("id"), handler.GetStadiumById)
	stadium.Post("/", validate.Stadium(), handler.CreateStadium)
	stadium.Put("/:id", validate.GetById("id"), validate.Stadium(), handler.UpdateStadium)

	user := app.Group("/User", logger.New())
	user.Get("/GetAll", handler.GetUsers)
	user.Get("/:id", validate.GetById("id"), handler.GetUserById)
	user.Post("/", validate.CreateUser(), handler.CreateUser)
	user.Put("/:id", validate.GetById("id"), validate.UpdateUser(), handler.UpdateUser)
	user.Patch("/:id/active", validate.GetById("id"), validate.UserActive(), handler.ActiveUser)

	event := app.Group("/Event", logger.New())
	event.Get("/GetAll", handler.GetEvents)
	event.Get("/GetById/:id", validate.GetById("id"), handler.GetEventById)
	event.Get("/GetBySlug/:slug", handler.GetEventBySlug)
	event.Get("/GetEventsBySportId/:sportId", validate.GetById("sportId"), handler.GetEventsBySportId)
	event.Get("/GetEventsByOrganizerId/:organizerId", validate.GetById("organizerId"), handler.GetEventsByOrganizerId)
	event.Get("/GetEventsByTeamId/:teamId", validate.GetById("teamId"), handler.GetEventsByTeamId)
	event.Get("/GetEventsByStadiumId/:stadiumId", validate.GetById("stadiumId"), handler.GetEventsByStadiumId)
	event.Post("/", validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:id", validate.GetById("id"), validate.UpdateEvent(), handler.UpdateEvent)

	reservation := app.Group("/Reservation", logger.New())
	reservation.Get("/Event/:eventId", validate.GetById("eventId"), handler.GetReservationsByEventId)
	reservation.Get("/Event/:eventId/active", validate.GetById("eventId"), handler.GetActiveReservationsByEventId)
	reservation.Get("/Student/:studentId", validate.GetById("studentId"), handler.GetReservationsByStudentId)
	reservation.Get("/Student/:studentId/active", validate.GetById("studentId"), handler.GetActiveReservationsByStudentId)
	reservation.Get("/:reservationId/qr", validate.GetById("reservationId"), handler.GetReservationQR)
	reservation.Post("/", validate.CreateReservation(), handler.CreateReservation)
	reservation.Delete("/:reservationId", validate.GetById("reservationId"), handler.CancelReservation)

	auth := app.Group("/Auth", logger.New())
	auth.Post("/Login", validate.Login(), handler.Login)

	app.Get("/Statistic", logger.New(), handler.GetStatistics)
}

func setupWebRoutes(app *fiber.App) {
	app.Get("/login", middleware.RedirectIfAuthenticated(), web.LoginPage)
	app.Post("/login", middleware.RedirectIfAuthenticated(), web.Login)
	app.Get("/register", middleware.RedirectIfAuthenticated(), web.RegisterPage)
	app.Post("/register", middleware.RedirectIfAuthenticated(), web.Register)
	app.Post("/logout", web.Logout)

	student := middleware.RequireRole(model.RoleStudent)
	app.Get("/", student, web.StudentHome)
	app.Get("/my-events", student, web.MyEvents)
	app.Post("/my-events", student, web.ReserveSeat)
	app.Post("/my-events/:id/cancel", student, web.CancelMyReservation)

	organizer := middleware.RequireRole(model.RoleOrganizer)
	app.Get("/organizer", organizer, web.OrganizerHome)
	app.Post("/organizer", organizer, web.SaveEvent)

	admin := app.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	admin.Get("/", web.AdminHome)
	admin.Get("/stadiums", web.AdminStadiums)
	admin.Post("/stadiums", web.SaveStadium)
	admin.Get("/teams", web.AdminTeams)
	admin.Post("/teams", web.SaveTeam)
	admin.Get("/sports", web.AdminSports)
	admin.Post("/sports", web.SaveSport)
	admin.Get("/organizers", web.AdminOrganizers)
	admin.Post("/organizers", web.CreateOrganizer)
	admin.Post("/organizers/:id/active", web.ToggleOrganizer)

	app.Get("/super-admin", middleware.RequireRole(model.RoleSuperAdmin), web.SuperAdminHome)
}
