package service

import (
	"testing"
	"ticket_master/model"
	"ticket_master/testutil"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type eventFixture struct {
	sport     model.Sport
	stadium   model.Stadium
	home      model.Team
	away      model.Team
	organizer model.User
}

func newEventFixture(t *testing.T, db *gorm.DB) eventFixture {
	sport := testutil.CreateSport(t, db, "Football")
	return eventFixture{
		sport:     sport,
		stadium:   testutil.CreateStadium(t, db, "Arena A", 100),
		home:      testutil.CreateTeam(t, db, sport.ID, "Tigers"),
		away:      testutil.CreateTeam(t, db, sport.ID, "Lions"),
		organizer: testutil.CreateUser(t, db, "org@uni.test", "password1", model.RoleOrganizer),
	}
}

func (f eventFixture) input(name string, start time.Time) model.CreateEventInput {
	return model.CreateEventInput{
		Name:          name,
		Description:   "Season opener",
		StartDateTime: start,
		EndDateTime:   start.Add(2 * time.Hour),
		SportId:       f.sport.ID,
		StadiumId:     f.stadium.ID,
		TeamOneId:     f.home.ID,
		TeamTwoId:     f.away.ID,
		OrganizerId:   f.organizer.ID,
	}
}

func TestCreateEventBuildsUniqueSlug(t *testing.T) {
	db := testutil.NewDB(t)
	f := newEventFixture(t, db)
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	first, err := CreateEvent(db, f.input("Derby Day", start))
	require.NoError(t, err)
	second, err := CreateEvent(db, f.input("Derby Day", start.Add(24*time.Hour)))
	require.NoError(t, err)

	one, err := GetEventById(db, first)
	require.NoError(t, err)
	two, err := GetEventById(db, second)
	require.NoError(t, err)
	assert.Equal(t, "derby-day", one.Slug)
	assert.Equal(t, "derby-day-1", two.Slug)

	bySlug, err := GetEventBySlug(db, "derby-day-1")
	require.NoError(t, err)
	assert.Equal(t, second, bySlug.ID)
	require.NotNil(t, bySlug.TeamOne)
	assert.Equal(t, "Tigers", bySlug.TeamOne.Name)
	assert.Equal(t, 100, bySlug.Capacity)
}

func TestCreateEventChecksReferences(t *testing.T) {
	db := testutil.NewDB(t)
	f := newEventFixture(t, db)
	student := testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)
	start := time.Now().UTC().Add(time.Hour)

	sameTeams := f.input("Mirror", start)
	sameTeams.TeamTwoId = f.home.ID
	_, err := CreateEvent(db, sameTeams)
	assert.ErrorIs(t, err, ErrSameTeams)

	missingStadium := f.input("Nowhere", start)
	missingStadium.StadiumId = uuid.New()
	_, err = CreateEvent(db, missingStadium)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Stadium not found", err.Error())

	notOrganizer := f.input("Student run", start)
	notOrganizer.OrganizerId = student.ID
	_, err = CreateEvent(db, notOrganizer)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestUpdateEventRenamesSlug(t *testing.T) {
	db := testutil.NewDB(t)
	f := newEventFixture(t, db)
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	id, err := CreateEvent(db, f.input("Cup Final", start))
	require.NoError(t, err)

	_, err = UpdateEvent(db, id, model.UpdateEventInput{
		Name:          "Cup Final Replay",
		Description:   "Again",
		StartDateTime: start,
		EndDateTime:   start.Add(3 * time.Hour),
	})
	require.NoError(t, err)

	event, err := GetEventById(db, id)
	require.NoError(t, err)
	assert.Equal(t, "cup-final-replay", event.Slug)
	assert.Equal(t, "Again", event.Description)

	_, err = UpdateEvent(db, uuid.New(), model.UpdateEventInput{Name: "Ghost", Description: "x", StartDateTime: start, EndDateTime: start.Add(time.Hour)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetEventsFilters(t *testing.T) {
	db := testutil.NewDB(t)
	f := newEventFixture(t, db)
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	_, err := CreateEvent(db, f.input("Home game", start))
	require.NoError(t, err)

	other := testutil.CreateStadium(t, db, "Arena B", 10)
	testutil.CreateEvent(t, db, other, start)

	all, err := GetEvents(db, model.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byTeam, err := GetEvents(db, model.EventFilter{TeamId: f.away.ID})
	require.NoError(t, err)
	require.Len(t, byTeam, 1)
	assert.Equal(t, "Home game", byTeam[0].Name)

	byStadium, err := GetEvents(db, model.EventFilter{StadiumId: other.ID})
	require.NoError(t, err)
	require.Len(t, byStadium, 1)
	assert.Equal(t, 10, byStadium[0].Capacity)

	byOrganizer, err := GetEvents(db, model.EventFilter{OrganizerId: f.organizer.ID})
	require.NoError(t, err)
	assert.Len(t, byOrganizer, 1)
}

func TestGetUpcomingEventsSkipsPastAndFull(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now().UTC().Truncate(time.Second)
	student := testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)

	open := testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Open", 5), now.Add(time.Hour))
	full := testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Tiny", 1), now.Add(time.Hour))
	testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Old", 5), now.Add(-time.Hour))
	testutil.CreateReservation(t, db, full.ID, student.ID, "1")

	events, err := GetUpcomingEvents(db, now)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, open.ID, events[0].ID)
	assert.EqualValues(t, 5, events[0].AvailableSeats())
}

func TestGetOrganizerEvent(t *testing.T) {
	db := testutil.NewDB(t)
	f := newEventFixture(t, db)
	id, err := CreateEvent(db, f.input("Owned", time.Now().UTC().Add(time.Hour)))
	require.NoError(t, err)

	_, err = GetOrganizerEvent(db, f.organizer.ID, id)
	require.NoError(t, err)

	_, err = GetOrganizerEvent(db, uuid.New(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}
