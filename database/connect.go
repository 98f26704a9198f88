package database

import (
	"fmt"
	"ticket_master/config"
	"ticket_master/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&model.Sport{},
		&model.Team{},
		&model.Stadium{},
		&model.User{},
		&model.Event{},
		&model.SeatReservation{},
	}
}

func ConnectDB(settings config.Settings) error {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		settings.Database.Host,
		settings.Database.Port,
		settings.Database.User,
		settings.Database.Password,
		settings.Database.Name,
		settings.Database.SSLMode,
	)

	gormLogger := logger.Default.LogMode(logger.Warn)
	if settings.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	log.Info().Str("host", settings.Database.Host).Str("database", settings.Database.Name).Msg("connection opened to database")

	if err := Migrate(db); err != nil {
		return err
	}
	log.Info().Msg("database migrated")

	if err := SeedData(db, settings.SeedFile, settings.IsProduction()); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	DB = db
	return nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
