package service

import (
	"sort"
	"strconv"
	"ticket_master/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetReservationsByEventId(db *gorm.DB, eventId uuid.UUID, activeOnly bool) ([]model.SeatReservation, error) {
	reservations := []model.SeatReservation{}
	query := db.Preload("Event").Preload("User").Where("event_id = ?", eventId)
	if activeOnly {
		query = query.Where("is_cancelled = ?", false)
	}
	err := query.Order("created_at ASC").Find(&reservations).Error
	return reservations, translate(err, "Reservation")
}

func GetReservationsByStudentId(db *gorm.DB, studentId uuid.UUID, activeOnly bool) ([]model.SeatReservation, error) {
	reservations := []model.SeatReservation{}
	query := db.Preload("Event").Preload("Event.Stadium").Where("user_id = ?", studentId)
	if activeOnly {
		query = query.Where("is_cancelled = ?", false)
	}
	err := query.Order("created_at DESC").Find(&reservations).Error
	return reservations, translate(err, "Reservation")
}

func GetReservationById(db *gorm.DB, id uuid.UUID) (model.SeatReservation, error) {
	var reservation model.SeatReservation
	err := db.Preload("Event").Preload("User").First(&reservation, "id = ?", id).Error
	return reservation, translate(err, "Reservation")
}

// CreateReservation books the lowest free seat for the student. The event row stays
// locked until commit so concurrent bookings for one event run one after another.
func CreateReservation(db *gorm.DB, input model.ReservationInput) (model.SeatReservation, error) {
	var (
		reservation model.SeatReservation
		event       model.Event
		stadium     model.Stadium
		student     model.User
		reserved    int
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, "id = ?", input.EventId).Error; err != nil {
			return translate(err, "Event")
		}
		if err := tx.First(&stadium, "id = ?", event.StadiumId).Error; err != nil {
			return translate(err, "Stadium")
		}
		if err := tx.First(&student, "id = ?", input.StudentId).Error; err != nil {
			return translate(err, "Student")
		}
		if student.Role != model.RoleStudent {
			return newError(ErrInvalidReference, "Only students can reserve seats")
		}

		var taken []string
		err := tx.Model(&model.SeatReservation{}).
			Where("event_id = ? AND is_cancelled = ?", event.ID, false).
			Pluck("seat_number", &taken).Error
		if err != nil {
			return err
		}
		if stadium.Capacity-len(taken) <= 0 {
			return newError(ErrNoSeatsAvailable, "No seats available")
		}

		reservation = model.SeatReservation{
			EventId:    event.ID,
			UserId:     student.ID,
			SeatNumber: NextSeatNumber(taken),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return translate(err, "Reservation")
		}
		reserved = len(taken) + 1
		return nil
	})
	if err != nil {
		return model.SeatReservation{}, err
	}

	publish(contextOf(db), model.Availability{
		EventId:        event.ID,
		Capacity:       stadium.Capacity,
		ReservedSeats:  int64(reserved),
		AvailableSeats: int64(stadium.Capacity - reserved),
	})
	sendConfirmation(student.Email, ticketEmailData(reservation, event, stadium, student))

	reservation.Event = &event
	return reservation, nil
}

// NextSeatNumber returns the lowest positive seat number not in taken.
func NextSeatNumber(taken []string) string {
	used := make([]int, 0, len(taken))
	for _, seat := range taken {
		if n, err := strconv.Atoi(seat); err == nil && n > 0 {
			used = append(used, n)
		}
	}
	sort.Ints(used)

	next := 1
	for _, n := range used {
		if n == next {
			next++
		} else if n > next {
			break
		}
	}
	return strconv.Itoa(next)
}

// CancelReservation soft-cancels the reservation; the seat becomes free for others.
func CancelReservation(db *gorm.DB, id uuid.UUID) (model.SeatReservation, error) {
	var reservation model.SeatReservation
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reservation, "id = ?", id).Error; err != nil {
			return translate(err, "Reservation")
		}
		if reservation.IsCancelled {
			return newError(ErrAlreadyCancelled, "Reservation is already cancelled")
		}
		reservation.IsCancelled = true
		return tx.Model(&reservation).Update("is_cancelled", true).Error
	})
	if err != nil {
		return reservation, err
	}

	PublishAvailability(db, reservation.EventId)
	return reservation, nil
}

// CancelStudentReservation cancels a reservation only if it belongs to studentId.
func CancelStudentReservation(db *gorm.DB, studentId, id uuid.UUID) (model.SeatReservation, error) {
	found, err := exists(db, &model.SeatReservation{}, "id = ? AND user_id = ?", id, studentId)
	if err != nil {
		return model.SeatReservation{}, err
	}
	if !found {
		return model.SeatReservation{}, notFound("Reservation")
	}
	return CancelReservation(db, id)
}
