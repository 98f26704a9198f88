package service

import (
	"context"
	"fmt"
	"sync"
	"ticket_master/model"
	"ticket_master/realtime"
	"ticket_master/utils"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type notifiers struct {
	mu        sync.RWMutex
	broker    realtime.Broker
	mailer    utils.Mailer
	publicURL string
}

var notify = &notifiers{
	broker:    realtime.NewMemoryBroker(),
	mailer:    utils.LogMailer{},
	publicURL: "http://localhost:8080",
}

// SetNotifiers replaces the availability broker, the mailer and the base url used in emails.
func SetNotifiers(broker realtime.Broker, mailer utils.Mailer, publicURL string) {
	notify.mu.Lock()
	defer notify.mu.Unlock()
	notify.broker = broker
	notify.mailer = mailer
	notify.publicURL = publicURL
}

func Broker() realtime.Broker {
	notify.mu.RLock()
	defer notify.mu.RUnlock()
	return notify.broker
}

func Mailer() utils.Mailer {
	notify.mu.RLock()
	defer notify.mu.RUnlock()
	return notify.mailer
}

func TicketLink(reservationId uuid.UUID) string {
	notify.mu.RLock()
	defer notify.mu.RUnlock()
	return fmt.Sprintf("%s/Reservation/%s/qr", notify.publicURL, reservationId)
}

func contextOf(db *gorm.DB) context.Context {
	if db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}

func GetAvailability(db *gorm.DB, eventId uuid.UUID) (model.Availability, error) {
	event, err := GetEventById(db, eventId)
	if err != nil {
		return model.Availability{}, err
	}
	return availabilityOf(event), nil
}

func availabilityOf(event model.EventResponse) model.Availability {
	return model.Availability{
		EventId:        event.ID,
		Capacity:       event.Capacity,
		ReservedSeats:  event.ReservedSeats,
		AvailableSeats: event.AvailableSeats(),
	}
}

// PublishAvailability recounts the event's seats and broadcasts them.
func PublishAvailability(db *gorm.DB, eventId uuid.UUID) {
	availability, err := GetAvailability(db, eventId)
	if err != nil {
		log.Warn().Err(err).Str("eventId", eventId.String()).Msg("could not load availability")
		return
	}
	publish(contextOf(db), availability)
}

func publish(ctx context.Context, availability model.Availability) {
	if err := Broker().Publish(ctx, availability); err != nil {
		log.Warn().Err(err).Str("eventId", availability.EventId.String()).Msg("could not publish availability")
	}
}

func ticketEmailData(reservation model.SeatReservation, event model.Event, stadium model.Stadium, student model.User) utils.TicketEmailData {
	return utils.TicketEmailData{
		StudentName: student.Name,
		EventName:   event.Name,
		Stadium:     stadium.Name,
		StartsAt:    event.StartDateTime.Format(time.RFC1123),
		SeatNumber:  reservation.SeatNumber,
		TicketLink:  TicketLink(reservation.ID),
	}
}

func sendConfirmation(to string, data utils.TicketEmailData) {
	email, err := utils.ReservationConfirmationEmail(to, data)
	if err != nil {
		log.Error().Err(err).Msg("could not render confirmation email")
		return
	}
	mailer := Mailer()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mailer.Send(ctx, email); err != nil {
			log.Error().Err(err).Str("to", to).Msg("could not send confirmation email")
		}
	}()
}
