package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"ticket_master/config"
	"ticket_master/database"
	"ticket_master/handler"
	"ticket_master/helper"
	"ticket_master/realtime"
	"ticket_master/router"
	"ticket_master/service"
	"ticket_master/utils"
	"ticket_master/worker"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setupLogger(settings config.Settings) {
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if !settings.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func main() {
	settings := config.Load()
	setupLogger(settings)

	if settings.SessionSecret == "" {
		log.Fatal().Err(helper.ErrSessionSecretMissing).Msg("refusing to start")
	}
	if err := database.ConnectDB(settings); err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	broker := realtime.NewBroker(settings.RedisAddr)
	mailer := utils.NewMailer(settings.SMTP)
	service.SetNotifiers(broker, mailer, settings.PublicURL)

	uploader, err := helper.NewImageUploader(settings.Cloudinary)
	switch {
	case errors.Is(err, helper.ErrUploadsDisabled):
		log.Warn().Msg("cloudinary credentials missing, team logo uploads disabled")
	case err != nil:
		log.Fatal().Err(err).Msg("cloudinary")
	default:
		handler.SetImageUploader(uploader)
	}

	reminderMailer, err := utils.NewPoolMailer(settings.SMTP, 4)
	if err != nil {
		log.Fatal().Err(err).Msg("reminder mailer")
	}
	if closer, ok := reminderMailer.(interface{ Close() }); ok {
		defer closer.Close()
	}

	clock := clockwork.NewRealClock()
	reminder := worker.NewReminder(database.DB, reminderMailer, clock)
	if err := reminder.Start(); err != nil {
		log.Fatal().Err(err).Msg("reminder scheduler")
	}
	defer reminder.Stop()
	snapshot := worker.NewAvailabilitySnapshot(database.DB, clock)
	if err := snapshot.Start(); err != nil {
		log.Fatal().Err(err).Msg("availability scheduler")
	}
	defer snapshot.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "ticket_master",
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: handler.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))
	router.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", settings.Port).Str("env", settings.Env).Msg("server starting")
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
