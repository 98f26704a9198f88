package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	DTO
	Name          string    `gorm:"size:100;not null" json:"name"`
	Description   string    `gorm:"size:100" json:"description"`
	Slug          string    `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	StartDateTime time.Time `gorm:"not null;index" json:"startDateTime"`
	EndDateTime   time.Time `gorm:"not null" json:"endDateTime"`
	SportId       uuid.UUID `gorm:"type:uuid;not null;index" json:"sportId"`
	StadiumId     uuid.UUID `gorm:"type:uuid;not null;index" json:"stadiumId"`
	TeamOneId     uuid.UUID `gorm:"type:uuid;not null;index" json:"teamOneId"`
	TeamTwoId     uuid.UUID `gorm:"type:uuid;not null;index" json:"teamTwoId"`
	OrganizerId   uuid.UUID `gorm:"type:uuid;not null;index" json:"organizerId"`
	Sport         *Sport    `gorm:"foreignKey:SportId" json:"sport,omitempty"`
	Stadium       *Stadium  `gorm:"foreignKey:StadiumId" json:"stadium,omitempty"`
	TeamOne       *Team     `gorm:"foreignKey:TeamOneId" json:"teamOne,omitempty"`
	TeamTwo       *Team     `gorm:"foreignKey:TeamTwoId" json:"teamTwo,omitempty"`
	Organizer     *User     `gorm:"foreignKey:OrganizerId" json:"organizer,omitempty"`
}

func (Event) TableName() string { return "event" }

// EventResponse is an event with its seat counts.
type EventResponse struct {
	Event
	Capacity      int   `json:"capacity"`
	ReservedSeats int64 `json:"reservedSeats"`
}

func (e EventResponse) AvailableSeats() int64 {
	return int64(e.Capacity) - e.ReservedSeats
}

type CreateEventInput struct {
	Name          string    `json:"name" validate:"required,max=100"`
	Description   string    `json:"description" validate:"required,max=100"`
	StartDateTime time.Time `json:"startDateTime" validate:"required"`
	EndDateTime   time.Time `json:"endDateTime" validate:"required,gtfield=StartDateTime"`
	SportId       uuid.UUID `json:"sportId" validate:"required"`
	StadiumId     uuid.UUID `json:"stadiumId" validate:"required"`
	TeamOneId     uuid.UUID `json:"teamOneId" validate:"required"`
	TeamTwoId     uuid.UUID `json:"teamTwoId" validate:"required"`
	OrganizerId   uuid.UUID `json:"organizerId" validate:"required"`
}

type UpdateEventInput struct {
	Name          string    `json:"name" validate:"required,max=100"`
	Description   string    `json:"description" validate:"required,max=100"`
	StartDateTime time.Time `json:"startDateTime" validate:"required"`
	EndDateTime   time.Time `json:"endDateTime" validate:"required,gtfield=StartDateTime"`
}

// EventFilter narrows event listings; zero values are ignored.
type EventFilter struct {
	SportId     uuid.UUID
	StadiumId   uuid.UUID
	TeamId      uuid.UUID
	OrganizerId uuid.UUID
	StartsAfter *time.Time
}
