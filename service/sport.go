package service

import (
	"strings"
	"ticket_master/model"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

func GetSports(db *gorm.DB) ([]model.Sport, error) {
	sports := []model.Sport{}
	err := db.Preload("Teams", orderByName).Order("name ASC").Find(&sports).Error
	return sports, translate(err, "Sport")
}

func GetSportById(db *gorm.DB, id uuid.UUID) (model.Sport, error) {
	var sport model.Sport
	err := db.Preload("Teams", orderByName).First(&sport, "id = ?", id).Error
	return sport, translate(err, "Sport")
}

func CreateSport(db *gorm.DB, input model.SportInput) (uuid.UUID, error) {
	input.Name = strings.TrimSpace(input.Name)
	taken, err := exists(db, &model.Sport{}, "name = ?", input.Name)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		return uuid.Nil, duplicate("Sport", "name")
	}

	var sport model.Sport
	if err := copier.Copy(&sport, &input); err != nil {
		return uuid.Nil, err
	}
	if err := db.Create(&sport).Error; err != nil {
		return uuid.Nil, translate(err, "Sport")
	}
	return sport.ID, nil
}

func UpdateSport(db *gorm.DB, id uuid.UUID, input model.SportInput) (uuid.UUID, error) {
	var sport model.Sport
	if err := db.First(&sport, "id = ?", id).Error; err != nil {
		return uuid.Nil, translate(err, "Sport")
	}
	input.Name = strings.TrimSpace(input.Name)
	taken, err := exists(db, &model.Sport{}, "name = ? AND id <> ?", input.Name, id)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		return uuid.Nil, duplicate("Sport", "name")
	}

	if err := copier.Copy(&sport, &input); err != nil {
		return uuid.Nil, err
	}
	if err := db.Save(&sport).Error; err != nil {
		return uuid.Nil, translate(err, "Sport")
	}
	return sport.ID, nil
}
