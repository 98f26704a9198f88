package worker

import (
	"context"
	"ticket_master/service"
	"ticket_master/utils"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const ReminderWindow = 24 * time.Hour

// Reminder emails students about events starting within ReminderWindow.
type Reminder struct {
	db        *gorm.DB
	mailer    utils.Mailer
	clock     clockwork.Clock
	scheduler gocron.Scheduler
}

func NewReminder(db *gorm.DB, mailer utils.Mailer, clock clockwork.Clock) *Reminder {
	return &Reminder{db: db, mailer: mailer, clock: clock}
}

// Run sends the reminders that are due now.
func (r *Reminder) Run(ctx context.Context) (int, error) {
	sent, err := service.SendEventReminders(r.db.WithContext(ctx), r.mailer, r.clock.Now(), ReminderWindow)
	if err != nil {
		return sent, err
	}
	if sent > 0 {
		log.Info().Int("sent", sent).Msg("event reminders sent")
	}
	return sent, nil
}

// Start runs the reminder every hour on a gocron scheduler.
func (r *Reminder) Start() error {
	s, err := gocron.NewScheduler(gocron.WithClock(r.clock))
	if err != nil {
		return err
	}
	_, err = s.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if _, err := r.Run(ctx); err != nil {
				log.Error().Err(err).Msg("reminder job failed")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}
	r.scheduler = s
	s.Start()
	log.Info().Msg("reminder scheduler started (hourly)")
	return nil
}

func (r *Reminder) Stop() {
	if r.scheduler == nil {
		return
	}
	if err := r.scheduler.Shutdown(); err != nil {
		log.Warn().Err(err).Msg("reminder scheduler shutdown")
	}
}
