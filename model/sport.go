package model

import "github.com/google/uuid"

type Sport struct {
	DTO
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:100" json:"description"`
	Teams       []Team `gorm:"foreignKey:SportId" json:"teams,omitempty"`
}

func (Sport) TableName() string { return "sport" }

type SportInput struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description" validate:"required,max=100"`
}

type Team struct {
	DTO
	Name    string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	SportId uuid.UUID `gorm:"type:uuid;not null;index" json:"sportId"`
	Sport   *Sport    `gorm:"foreignKey:SportId" json:"sport,omitempty"`
	LogoUrl string    `json:"logoUrl"`
}

func (Team) TableName() string { return "team" }

type TeamInput struct {
	Name    string    `json:"name" validate:"required,max=100"`
	SportId uuid.UUID `json:"sportId" validate:"required"`
}
