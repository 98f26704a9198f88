package worker

import (
	"context"
	"ticket_master/model"
	"ticket_master/service"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AvailabilitySnapshot republishes the seat counts of every upcoming event so
// subscribers that missed an update catch up.
type AvailabilitySnapshot struct {
	db    *gorm.DB
	clock clockwork.Clock
	cron  *cron.Cron
}

func NewAvailabilitySnapshot(db *gorm.DB, clock clockwork.Clock) *AvailabilitySnapshot {
	return &AvailabilitySnapshot{db: db, clock: clock}
}

// Run publishes availability for upcoming events and returns how many were sent.
func (a *AvailabilitySnapshot) Run(ctx context.Context) (int, error) {
	now := a.clock.Now()
	events, err := service.GetEvents(a.db.WithContext(ctx), model.EventFilter{StartsAfter: &now})
	if err != nil {
		return 0, err
	}
	broker := service.Broker()
	for _, event := range events {
		availability := model.Availability{
			EventId:        event.ID,
			Capacity:       event.Capacity,
			ReservedSeats:  event.ReservedSeats,
			AvailableSeats: event.AvailableSeats(),
		}
		if err := broker.Publish(ctx, availability); err != nil {
			return 0, err
		}
	}
	return len(events), nil
}

// Start schedules Run every five minutes.
func (a *AvailabilitySnapshot) Start() error {
	a.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	_, err := a.cron.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := a.Run(ctx); err != nil {
			log.Error().Err(err).Msg("availability snapshot failed")
		}
	})
	if err != nil {
		return err
	}
	a.cron.Start()
	log.Info().Msg("availability snapshot scheduler started (every 5 minutes)")
	return nil
}

func (a *AvailabilitySnapshot) Stop() {
	if a.cron != nil {
		<-a.cron.Stop().Done()
	}
}
