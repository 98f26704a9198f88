// Package testutil opens throwaway databases and builds fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"
	"ticket_master/database"
	"ticket_master/helper"
	"ticket_master/model"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const SessionSecret = "test-session-secret"

// NewDB migrates a fresh SQLite file database and installs it as database.DB.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("SESSION_SECRET", SessionSecret)

	path := filepath.Join(t.TempDir(), "tickets.db")
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	database.DB = db
	return db
}

func unique(prefix string) string {
	return prefix + " " + uuid.NewString()[:8]
}

func CreateSport(t *testing.T, db *gorm.DB, name string) model.Sport {
	t.Helper()
	sport := model.Sport{Name: name, Description: name + " league"}
	require.NoError(t, db.Create(&sport).Error)
	return sport
}

func CreateTeam(t *testing.T, db *gorm.DB, sportId uuid.UUID, name string) model.Team {
	t.Helper()
	team := model.Team{Name: name, SportId: sportId}
	require.NoError(t, db.Create(&team).Error)
	return team
}

func CreateStadium(t *testing.T, db *gorm.DB, name string, capacity int) model.Stadium {
	t.Helper()
	stadium := model.Stadium{Name: name, Address: "1 Main St", Capacity: capacity}
	require.NoError(t, db.Create(&stadium).Error)
	return stadium
}

func CreateUser(t *testing.T, db *gorm.DB, email, password string, role model.Role) model.User {
	t.Helper()
	hash, err := helper.HashPassword(password)
	require.NoError(t, err)
	user := model.User{Name: "User " + email, Email: email, Password: hash, Role: role, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// CreateEvent adds an event at stadium starting at start, with its own sport, teams and organizer.
func CreateEvent(t *testing.T, db *gorm.DB, stadium model.Stadium, start time.Time) model.Event {
	t.Helper()
	sport := CreateSport(t, db, unique("Sport"))
	home := CreateTeam(t, db, sport.ID, unique("Home"))
	away := CreateTeam(t, db, sport.ID, unique("Away"))
	organizer := CreateUser(t, db, uuid.NewString()+"@organizer.test", "organizer-pass", model.RoleOrganizer)

	event := model.Event{
		Name:          unique("Match"),
		Description:   "Friendly",
		Slug:          "match-" + uuid.NewString(),
		StartDateTime: start,
		EndDateTime:   start.Add(2 * time.Hour),
		SportId:       sport.ID,
		StadiumId:     stadium.ID,
		TeamOneId:     home.ID,
		TeamTwoId:     away.ID,
		OrganizerId:   organizer.ID,
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func CreateReservation(t *testing.T, db *gorm.DB, eventId, studentId uuid.UUID, seat string) model.SeatReservation {
	t.Helper()
	reservation := model.SeatReservation{EventId: eventId, UserId: studentId, SeatNumber: seat}
	require.NoError(t, db.Create(&reservation).Error)
	return reservation
}
