package service

import (
	"strings"
	"ticket_master/model"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func orderByStart(db *gorm.DB) *gorm.DB {
	return db.Order("start_date_time ASC")
}

func GetStadiums(db *gorm.DB) ([]model.Stadium, error) {
	stadiums := []model.Stadium{}
	err := db.Preload("Events", orderByStart).Order("name ASC").Find(&stadiums).Error
	return stadiums, translate(err, "Stadium")
}

func GetStadiumById(db *gorm.DB, id uuid.UUID) (model.Stadium, error) {
	var stadium model.Stadium
	err := db.Preload("Events", orderByStart).First(&stadium, "id = ?", id).Error
	return stadium, translate(err, "Stadium")
}

func CreateStadium(db *gorm.DB, input model.StadiumInput) (uuid.UUID, error) {
	input.Name = strings.TrimSpace(input.Name)
	var stadium model.Stadium
	if err := copier.Copy(&stadium, &input); err != nil {
		return uuid.Nil, err
	}
	if err := db.Create(&stadium).Error; err != nil {
		return uuid.Nil, translate(err, "Stadium")
	}
	return stadium.ID, nil
}

func UpdateStadium(db *gorm.DB, id uuid.UUID, input model.StadiumInput) (uuid.UUID, error) {
	var stadium model.Stadium
	if err := db.First(&stadium, "id = ?", id).Error; err != nil {
		return uuid.Nil, translate(err, "Stadium")
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := copier.Copy(&stadium, &input); err != nil {
		return uuid.Nil, err
	}
	if err := db.Save(&stadium).Error; err != nil {
		return uuid.Nil, translate(err, "Stadium")
	}
	return stadium.ID, nil
}
