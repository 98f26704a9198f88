package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *DTO) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Envelope wraps every REST API response.
type Envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type Role int

const (
	RoleStudent Role = iota + 1
	RoleOrganizer
	RoleAdmin
	RoleSuperAdmin
)

func (r Role) Valid() bool {
	return r >= RoleStudent && r <= RoleSuperAdmin
}

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleOrganizer:
		return "organizer"
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "super_admin"
	}
	return "unknown"
}

// Home is the landing page of the role's area.
func (r Role) Home() string {
	switch r {
	case RoleOrganizer:
		return "/organizer"
	case RoleAdmin:
		return "/admin"
	case RoleSuperAdmin:
		return "/super-admin"
	}
	return "/"
}

type Statistics struct {
	Sports       int64 `json:"sports"`
	Teams        int64 `json:"teams"`
	Stadiums     int64 `json:"stadiums"`
	Events       int64 `json:"events"`
	Students     int64 `json:"students"`
	Organizers   int64 `json:"organizers"`
	Reservations int64 `json:"reservations"`
}
