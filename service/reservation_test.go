package service

import (
	"encoding/json"
	"testing"
	"ticket_master/model"
	"ticket_master/realtime"
	"ticket_master/testutil"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useNotifiers(t *testing.T) (*realtime.MemoryBroker, *testutil.RecordingMailer) {
	broker := realtime.NewMemoryBroker()
	mailer := &testutil.RecordingMailer{}
	SetNotifiers(broker, mailer, "https://tickets.test")
	t.Cleanup(func() { SetNotifiers(realtime.NewMemoryBroker(), mailer, "http://localhost:8080") })
	return broker, mailer
}

func TestCreateReservationFillsStadium(t *testing.T) {
	db := testutil.NewDB(t)
	useNotifiers(t)
	event := testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Arena A", 100), time.Now().UTC().Add(time.Hour))
	student := testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)

	seats := map[string]bool{}
	for i := 0; i < 100; i++ {
		reservation, err := CreateReservation(db, model.ReservationInput{EventId: event.ID, StudentId: student.ID})
		require.NoError(t, err)
		assert.False(t, seats[reservation.SeatNumber], "seat %s handed out twice", reservation.SeatNumber)
		seats[reservation.SeatNumber] = true
	}

	_, err := CreateReservation(db, model.ReservationInput{EventId: event.ID, StudentId: student.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSeatsAvailable)
	assert.Equal(t, "No seats available", err.Error())

	availability, err := GetAvailability(db, event.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 100, availability.ReservedSeats)
	assert.EqualValues(t, 0, availability.AvailableSeats)
}

func TestCreateReservationRejectsBadReferences(t *testing.T) {
	db := testutil.NewDB(t)
	useNotifiers(t)
	event := testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Arena A", 10), time.Now().UTC().Add(time.Hour))
	organizer := testutil.CreateUser(t, db, "org@uni.test", "password1", model.RoleOrganizer)

	_, err := CreateReservation(db, model.ReservationInput{EventId: uuid.New(), StudentId: organizer.ID})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Event not found", err.Error())

	_, err = CreateReservation(db, model.ReservationInput{EventId: event.ID, StudentId: uuid.New()})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = CreateReservation(db, model.ReservationInput{EventId: event.ID, StudentId: organizer.ID})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCreateReservationPublishesAndEmails(t *testing.T) {
	db := testutil.NewDB(t)
	broker, mailer := useNotifiers(t)
	event := testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Arena A", 3), time.Now().UTC().Add(time.Hour))
	student := testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)

	sub, err := broker.Subscribe(t.Context(), event.ID)
	require.NoError(t, err)
	defer sub.Close()

	reservation, err := CreateReservation(db, model.ReservationInput{EventId: event.ID, StudentId: student.ID})
	require.NoError(t, err)
	assert.Equal(t, "1", reservation.SeatNumber)

	select {
	case payload := <-sub.Messages():
		var availability model.Availability
		require.NoError(t, json.Unmarshal(payload, &availability))
		assert.EqualValues(t, 1, availability.ReservedSeats)
		assert.EqualValues(t, 2, availability.AvailableSeats)
	case <-time.After(time.Second):
		t.Fatal("no availability update published")
	}

	assert.Eventually(t, func() bool { return len(mailer.Sent()) == 1 }, time.Second, 10*time.Millisecond)
	email := mailer.Sent()[0]
	assert.Equal(t, "stu@uni.test", email.To)
	assert.Contains(t, email.HTML, "https://tickets.test/Reservation/"+reservation.ID.String()+"/qr")
}

func TestCancelReservation(t *testing.T) {
	db := testutil.NewDB(t)
	useNotifiers(t)
	event := testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Arena A", 2), time.Now().UTC().Add(time.Hour))
	student := testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)

	first, err := CreateReservation(db, model.ReservationInput{EventId: event.ID, StudentId: student.ID})
	require.NoError(t, err)
	_, err = CreateReservation(db, model.ReservationInput{EventId: event.ID, StudentId: student.ID})
	require.NoError(t, err)

	_, err = CancelReservation(db, first.ID)
	require.NoError(t, err)

	_, err = CancelReservation(db, first.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	_, err = CancelReservation(db, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	active, err := GetReservationsByEventId(db, event.ID, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	all, err := GetReservationsByEventId(db, event.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := GetReservationsByStudentId(db, student.ID, true)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Event)
	require.NotNil(t, mine[0].Event.Stadium)

	again, err := CreateReservation(db, model.ReservationInput{EventId: event.ID, StudentId: student.ID})
	require.NoError(t, err)
	assert.Equal(t, first.SeatNumber, again.SeatNumber)
}

func TestCancelStudentReservationChecksOwner(t *testing.T) {
	db := testutil.NewDB(t)
	useNotifiers(t)
	event := testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Arena A", 2), time.Now().UTC().Add(time.Hour))
	owner := testutil.CreateUser(t, db, "owner@uni.test", "password1", model.RoleStudent)
	other := testutil.CreateUser(t, db, "other@uni.test", "password1", model.RoleStudent)
	reservation := testutil.CreateReservation(t, db, event.ID, owner.ID, "1")

	_, err := CancelStudentReservation(db, other.ID, reservation.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cancelled, err := CancelStudentReservation(db, owner.ID, reservation.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled)
}

func TestNextSeatNumber(t *testing.T) {
	tests := []struct {
		taken []string
		want  string
	}{
		{nil, "1"},
		{[]string{"1", "2", "3"}, "4"},
		{[]string{"3", "1"}, "2"},
		{[]string{"2", "2", "1", "x"}, "3"},
		{[]string{"0", "-4"}, "1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextSeatNumber(tt.taken), "taken %v", tt.taken)
	}
}

func TestSendEventReminders(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now().UTC().Truncate(time.Second)
	stadium := testutil.CreateStadium(t, db, "Arena A", 10)
	student := testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)

	soon := testutil.CreateEvent(t, db, stadium, now.Add(3*time.Hour))
	later := testutil.CreateEvent(t, db, stadium, now.Add(72*time.Hour))
	due := testutil.CreateReservation(t, db, soon.ID, student.ID, "1")
	cancelled := testutil.CreateReservation(t, db, soon.ID, student.ID, "2")
	require.NoError(t, db.Model(&cancelled).Update("is_cancelled", true).Error)
	testutil.CreateReservation(t, db, later.ID, student.ID, "1")

	mailer := &testutil.RecordingMailer{}
	sent, err := SendEventReminders(db, mailer, now, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, mailer.Sent(), 1)
	assert.Contains(t, mailer.Sent()[0].HTML, soon.Name)

	reloaded, err := GetReservationById(db, due.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.RemindedAt)

	sent, err = SendEventReminders(db, mailer, now, 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, sent)
}
