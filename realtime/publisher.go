package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"ticket_master/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Channel is the pub/sub channel carrying an event's availability.
func Channel(eventId uuid.UUID) string {
	return fmt.Sprintf("event:%s:availability", eventId)
}

type Subscription interface {
	Messages() <-chan []byte
	Close() error
}

type Broker interface {
	Publish(ctx context.Context, availability model.Availability) error
	Subscribe(ctx context.Context, eventId uuid.UUID) (Subscription, error)
}

// NewBroker uses Redis when addr is set and an in-process broker otherwise.
func NewBroker(addr string) Broker {
	if addr == "" {
		return NewMemoryBroker()
	}
	return NewRedisBroker(redis.NewClient(&redis.Options{Addr: addr}))
}

type RedisBroker struct {
	client *redis.Client
}

func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

func (b *RedisBroker) Publish(ctx context.Context, availability model.Availability) error {
	payload, err := json.Marshal(availability)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, Channel(availability.EventId), payload).Err()
}

func (b *RedisBroker) Subscribe(ctx context.Context, eventId uuid.UUID) (Subscription, error) {
	pubsub := b.client.Subscribe(ctx, Channel(eventId))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}
	out := make(chan []byte, 16)
	go forward(pubsub.Channel(), out)
	return &redisSubscription{pubsub: pubsub, messages: out}, nil
}

// forward copies payloads until in is closed, then closes out. A full out drops the
// update so a stalled reader never blocks the subscription shutdown.
func forward(in <-chan *redis.Message, out chan []byte) {
	defer close(out)
	for msg := range in {
		select {
		case out <- []byte(msg.Payload):
		default:
		}
	}
}

func (b *RedisBroker) Close() error {
	return b.client.Close()
}

type redisSubscription struct {
	pubsub   *redis.PubSub
	messages chan []byte
}

func (s *redisSubscription) Messages() <-chan []byte { return s.messages }
func (s *redisSubscription) Close() error            { return s.pubsub.Close() }

type MemoryBroker struct {
	mu          sync.Mutex
	subscribers map[string]map[*memorySubscription]struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subscribers: make(map[string]map[*memorySubscription]struct{})}
}

func (b *MemoryBroker) Publish(_ context.Context, availability model.Availability) error {
	payload, err := json.Marshal(availability)
	if err != nil {
		return err
	}
	channel := Channel(availability.EventId)

	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subscribers[channel] {
		select {
		case sub.messages <- payload:
		default:
			// slow subscriber, drop the update; the next one supersedes it
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(_ context.Context, eventId uuid.UUID) (Subscription, error) {
	sub := &memorySubscription{
		broker:   b,
		channel:  Channel(eventId),
		messages: make(chan []byte, 16),
	}
	b.mu.Lock()
	if b.subscribers[sub.channel] == nil {
		b.subscribers[sub.channel] = make(map[*memorySubscription]struct{})
	}
	b.subscribers[sub.channel][sub] = struct{}{}
	b.mu.Unlock()
	return sub, nil
}

type memorySubscription struct {
	broker   *MemoryBroker
	channel  string
	messages chan []byte
	once     sync.Once
}

func (s *memorySubscription) Messages() <-chan []byte { return s.messages }

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		s.broker.mu.Lock()
		delete(s.broker.subscribers[s.channel], s)
		if len(s.broker.subscribers[s.channel]) == 0 {
			delete(s.broker.subscribers, s.channel)
		}
		s.broker.mu.Unlock()
		close(s.messages)
	})
	return nil
}
