package model

type Stadium struct {
	DTO
	Name     string  `gorm:"size:100;not null" json:"name"`
	Address  string  `gorm:"size:100" json:"address"`
	Capacity int     `gorm:"not null" json:"capacity"`
	Events   []Event `gorm:"foreignKey:StadiumId" json:"events,omitempty"`
}

func (Stadium) TableName() string { return "stadium" }

type StadiumInput struct {
	Name     string `json:"name" form:"name" validate:"required,max=100"`
	Address  string `json:"address" form:"address" validate:"required,max=100"`
	Capacity int    `json:"capacity" form:"capacity" validate:"gte=0"`
}
