package service

import (
	"ticket_master/model"
	"ticket_master/utils"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SendEventReminders emails every active reservation whose event starts within window
// and marks it reminded. It returns how many reminders were sent.
func SendEventReminders(db *gorm.DB, mailer utils.Mailer, now time.Time, window time.Duration) (int, error) {
	startingSoon := db.Model(&model.Event{}).
		Select("id").
		Where("start_date_time > ? AND start_date_time <= ?", now, now.Add(window))

	var due []model.SeatReservation
	err := db.Preload("Event.Stadium").Preload("User").
		Where("is_cancelled = ? AND reminded_at IS NULL", false).
		Where("event_id IN (?)", startingSoon).
		Find(&due).Error
	if err != nil {
		return 0, err
	}

	ctx := contextOf(db)
	sent := 0
	for _, reservation := range due {
		if reservation.Event == nil || reservation.User == nil {
			continue
		}
		var stadium model.Stadium
		if reservation.Event.Stadium != nil {
			stadium = *reservation.Event.Stadium
		}
		email, err := utils.EventReminderEmail(reservation.User.Email, ticketEmailData(reservation, *reservation.Event, stadium, *reservation.User))
		if err != nil {
			return sent, err
		}
		if err := mailer.Send(ctx, email); err != nil {
			log.Error().Err(err).Str("reservationId", reservation.ID.String()).Msg("could not send reminder")
			continue
		}
		if err := db.Model(&model.SeatReservation{}).Where("id = ?", reservation.ID).Update("reminded_at", now).Error; err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
