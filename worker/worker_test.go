package worker

import (
	"context"
	"encoding/json"
	"testing"
	"ticket_master/model"
	"ticket_master/realtime"
	"ticket_master/service"
	"ticket_master/testutil"
	"ticket_master/utils"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderRunUsesClock(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	stadium := testutil.CreateStadium(t, db, "Arena A", 10)
	student := testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)
	event := testutil.CreateEvent(t, db, stadium, now.Add(30*time.Hour))
	testutil.CreateReservation(t, db, event.ID, student.ID, "1")

	mailer := &testutil.RecordingMailer{}
	reminder := NewReminder(db, mailer, clock)

	sent, err := reminder.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent, "event is still more than a day away")

	clock.Advance(7 * time.Hour)
	sent, err = reminder.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, mailer.Sent(), 1)
	assert.Equal(t, "stu@uni.test", mailer.Sent()[0].To)

	clock.Advance(time.Hour)
	sent, err = reminder.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestAvailabilitySnapshotPublishesUpcoming(t *testing.T) {
	db := testutil.NewDB(t)
	broker := realtime.NewMemoryBroker()
	service.SetNotifiers(broker, utils.LogMailer{}, "http://localhost:8080")
	t.Cleanup(func() { service.SetNotifiers(realtime.NewMemoryBroker(), utils.LogMailer{}, "http://localhost:8080") })

	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	student := testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)
	upcoming := testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Arena A", 4), now.Add(time.Hour))
	testutil.CreateEvent(t, db, testutil.CreateStadium(t, db, "Arena B", 4), now.Add(-time.Hour))
	testutil.CreateReservation(t, db, upcoming.ID, student.ID, "1")

	sub, err := broker.Subscribe(context.Background(), upcoming.ID)
	require.NoError(t, err)
	defer sub.Close()

	snapshot := NewAvailabilitySnapshot(db, clock)
	published, err := snapshot.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, published)

	select {
	case payload := <-sub.Messages():
		var availability model.Availability
		require.NoError(t, json.Unmarshal(payload, &availability))
		assert.Equal(t, upcoming.ID, availability.EventId)
		assert.EqualValues(t, 3, availability.AvailableSeats)
	default:
		t.Fatal("snapshot did not publish")
	}
}

func TestAvailabilitySnapshotStartStop(t *testing.T) {
	db := testutil.NewDB(t)
	snapshot := NewAvailabilitySnapshot(db, clockwork.NewFakeClock())
	require.NoError(t, snapshot.Start())
	snapshot.Stop()
}
