package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"ticket_master/model"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	id := uuid.MustParse("6f1c1c43-4f3c-4c57-9a2e-2ab6c8f9b001")
	assert.Equal(t, "event:6f1c1c43-4f3c-4c57-9a2e-2ab6c8f9b001:availability", Channel(id))
}

func TestMemoryBrokerDeliversToEventSubscribers(t *testing.T) {
	broker := NewMemoryBroker()
	ctx := context.Background()
	eventId := uuid.New()
	otherId := uuid.New()

	sub, err := broker.Subscribe(ctx, eventId)
	require.NoError(t, err)
	defer sub.Close()
	other, err := broker.Subscribe(ctx, otherId)
	require.NoError(t, err)
	defer other.Close()

	require.NoError(t, broker.Publish(ctx, model.Availability{EventId: eventId, Capacity: 10, ReservedSeats: 3, AvailableSeats: 7}))

	payload := <-sub.Messages()
	var got model.Availability
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, eventId, got.EventId)
	assert.EqualValues(t, 7, got.AvailableSeats)
	assert.Empty(t, other.Messages())
}

func TestMemorySubscriptionCloseIsIdempotent(t *testing.T) {
	broker := NewMemoryBroker()
	eventId := uuid.New()
	sub, err := broker.Subscribe(context.Background(), eventId)
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	_, open := <-sub.Messages()
	assert.False(t, open)
	assert.NoError(t, broker.Publish(context.Background(), model.Availability{EventId: eventId}))
}

func TestForwardDropsWhenReaderStalls(t *testing.T) {
	in := make(chan *redis.Message)
	out := make(chan []byte, 1)
	done := make(chan struct{})
	go func() {
		forward(in, out)
		close(done)
	}()

	in <- &redis.Message{Payload: "first"}
	in <- &redis.Message{Payload: "second"}
	in <- &redis.Message{Payload: "third"}
	close(in)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forward blocked on a full subscriber")
	}
	assert.Equal(t, []byte("first"), <-out)
	_, open := <-out
	assert.False(t, open)
}
