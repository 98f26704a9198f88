package service

import (
	"errors"
	"strings"
	"ticket_master/helper"
	"ticket_master/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func GetUsers(db *gorm.DB) ([]model.User, error) {
	users := []model.User{}
	err := db.Order("name ASC").Find(&users).Error
	return users, translate(err, "User")
}

func GetUsersByRole(db *gorm.DB, role model.Role) ([]model.User, error) {
	users := []model.User{}
	err := db.Where("role = ?", role).Order("name ASC").Find(&users).Error
	return users, translate(err, "User")
}

func GetUserById(db *gorm.DB, id uuid.UUID) (model.User, error) {
	var user model.User
	err := db.First(&user, "id = ?", id).Error
	return user, translate(err, "User")
}

func CreateUser(db *gorm.DB, input model.CreateUserInput) (uuid.UUID, error) {
	email := normalizeEmail(input.Email)
	taken, err := exists(db, &model.User{}, "email = ?", email)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		return uuid.Nil, duplicate("User", "email")
	}

	hash, err := helper.HashPassword(strings.TrimSpace(input.Password))
	if err != nil {
		return uuid.Nil, err
	}
	user := model.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: hash,
		Role:     input.Role,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return uuid.Nil, translate(err, "User")
	}
	return user.ID, nil
}

func UpdateUser(db *gorm.DB, id uuid.UUID, input model.UpdateUserInput) (uuid.UUID, error) {
	var user model.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return uuid.Nil, translate(err, "User")
	}
	email := normalizeEmail(input.Email)
	taken, err := exists(db, &model.User{}, "email = ? AND id <> ?", email, id)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		return uuid.Nil, duplicate("User", "email")
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Email = email
	user.Role = input.Role
	if err := db.Save(&user).Error; err != nil {
		return uuid.Nil, translate(err, "User")
	}
	return user.ID, nil
}

func SetUserActive(db *gorm.DB, id uuid.UUID, active bool) (uuid.UUID, error) {
	var user model.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return uuid.Nil, translate(err, "User")
	}
	if err := db.Model(&user).Update("is_active", active).Error; err != nil {
		return uuid.Nil, translate(err, "User")
	}
	return user.ID, nil
}

// Authenticate checks credentials for the requested role. Passwords are compared trimmed,
// as they are stored. Unknown email, wrong password and role mismatch all report ErrInvalidCredentials.
func Authenticate(db *gorm.DB, input model.LoginInput) (model.User, error) {
	var user model.User
	err := db.First(&user, "email = ?", normalizeEmail(input.Email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, newError(ErrInvalidCredentials, "Invalid email or password")
		}
		return user, translate(err, "User")
	}
	if !helper.CheckPasswordHash(strings.TrimSpace(input.Password), user.Password) {
		return user, newError(ErrInvalidCredentials, "Invalid email or password")
	}
	if user.Role != input.Role {
		return user, newError(ErrInvalidCredentials, "This account does not have the %s role", input.Role)
	}
	if !user.IsActive {
		return user, newError(ErrInactiveAccount, "This account has been deactivated")
	}
	return user, nil
}
