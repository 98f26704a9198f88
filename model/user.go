package model

type User struct {
	DTO
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"not null;index" json:"role"`
	IsActive bool   `gorm:"not null" json:"isActive"`
}

func (User) TableName() string { return "user" }

type CreateUserInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     Role   `json:"role" validate:"required,min=1,max=4"`
}

type UpdateUserInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
	Role  Role   `json:"role" validate:"required,min=1,max=4"`
}

type UserActiveInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,min=1,max=4"`
}
