package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var loadEnvOnce sync.Once

// Config returns the value of an environment variable, loading .env on first use.
func Config(key string) string {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Debug().Err(err).Msg("no .env file loaded")
		}
	})
	return os.Getenv(key)
}

func configOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

func configInt(key string, fallback int) int {
	v := Config(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer setting, using default")
		return fallback
	}
	return n
}

type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
}

type Settings struct {
	Env           string
	Port          string
	LogLevel      string
	SessionSecret string
	CorsOrigins   string
	RedisAddr     string
	SeedFile      string
	PublicURL     string
	Database      Database
	SMTP          SMTP
	Cloudinary    Cloudinary
}

func Load() Settings {
	return Settings{
		Env:           configOr("APP_ENV", "development"),
		Port:          configOr("PORT", "8080"),
		LogLevel:      configOr("LOG_LEVEL", "info"),
		SessionSecret: Config("SESSION_SECRET"),
		CorsOrigins:   configOr("CORS_ORIGINS", "http://localhost:3000"),
		RedisAddr:     Config("REDIS_ADDR"),
		SeedFile:      Config("SEED_FILE"),
		PublicURL:     strings.TrimRight(configOr("PUBLIC_URL", "http://localhost:8080"), "/"),
		Database: Database{
			Host:     configOr("DB_HOST", "localhost"),
			Port:     configInt("DB_PORT", 5432),
			User:     configOr("DB_USER", "postgres"),
			Password: Config("DB_PASSWORD"),
			Name:     configOr("DB_NAME", "ticket_master"),
			SSLMode:  configOr("DB_SSLMODE", "disable"),
		},
		SMTP: SMTP{
			Host:     Config("SMTP_HOST"),
			Port:     configInt("SMTP_PORT", 587),
			Username: Config("SMTP_USERNAME"),
			Password: Config("SMTP_PASSWORD"),
			From:     configOr("SMTP_FROM", "tickets@localhost"),
		},
		Cloudinary: Cloudinary{
			CloudName: Config("CLOUDINARY_CLOUD_NAME"),
			APIKey:    Config("CLOUDINARY_API_KEY"),
			APISecret: Config("CLOUDINARY_API_SECRET"),
		},
	}
}

func (s Settings) IsProduction() bool {
	return s.Env == "production"
}

func IsProduction() bool {
	return Config("APP_ENV") == "production"
}
