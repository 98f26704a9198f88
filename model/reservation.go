package model

import (
	"time"

	"github.com/google/uuid"
)

type SeatReservation struct {
	DTO
	EventId     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_event_active_seat,where:is_cancelled = false" json:"eventId"`
	SeatNumber  string     `gorm:"size:20;not null;uniqueIndex:idx_event_active_seat,where:is_cancelled = false" json:"seatNumber"`
	IsCancelled bool       `gorm:"not null;index" json:"isCancelled"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index" json:"studentId"`
	RemindedAt  *time.Time `json:"remindedAt,omitempty"`
	Event       *Event     `gorm:"foreignKey:EventId" json:"event,omitempty"`
	User        *User      `gorm:"foreignKey:UserId" json:"student,omitempty"`
}

func (SeatReservation) TableName() string { return "seat_reservation" }

type ReservationInput struct {
	EventId   uuid.UUID `json:"eventId" validate:"required"`
	StudentId uuid.UUID `json:"studentId" validate:"required"`
}

// Availability is the live seat count pushed to websocket subscribers.
type Availability struct {
	EventId        uuid.UUID `json:"eventId"`
	Capacity       int       `json:"capacity"`
	ReservedSeats  int64     `json:"reservedSeats"`
	AvailableSeats int64     `json:"availableSeats"`
}
