package service

import (
	"strings"
	"ticket_master/model"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetTeams(db *gorm.DB) ([]model.Team, error) {
	teams := []model.Team{}
	err := db.Preload("Sport").Order("name ASC").Find(&teams).Error
	return teams, translate(err, "Team")
}

func GetTeamById(db *gorm.DB, id uuid.UUID) (model.Team, error) {
	var team model.Team
	err := db.Preload("Sport").First(&team, "id = ?", id).Error
	return team, translate(err, "Team")
}

func GetTeamsBySportId(db *gorm.DB, sportId uuid.UUID) ([]model.Team, error) {
	teams := []model.Team{}
	err := db.Preload("Sport").Where("sport_id = ?", sportId).Order("name ASC").Find(&teams).Error
	return teams, translate(err, "Team")
}

func CreateTeam(db *gorm.DB, input model.TeamInput) (uuid.UUID, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := checkTeamInput(db, uuid.Nil, input); err != nil {
		return uuid.Nil, err
	}

	var team model.Team
	if err := copier.Copy(&team, &input); err != nil {
		return uuid.Nil, err
	}
	if err := db.Create(&team).Error; err != nil {
		return uuid.Nil, translate(err, "Team")
	}
	return team.ID, nil
}

func UpdateTeam(db *gorm.DB, id uuid.UUID, input model.TeamInput) (uuid.UUID, error) {
	var team model.Team
	if err := db.First(&team, "id = ?", id).Error; err != nil {
		return uuid.Nil, translate(err, "Team")
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := checkTeamInput(db, id, input); err != nil {
		return uuid.Nil, err
	}

	team.Name = input.Name
	team.SportId = input.SportId
	team.Sport = nil
	if err := db.Save(&team).Error; err != nil {
		return uuid.Nil, translate(err, "Team")
	}
	return team.ID, nil
}

func checkTeamInput(db *gorm.DB, id uuid.UUID, input model.TeamInput) error {
	taken, err := exists(db, &model.Team{}, "name = ? AND id <> ?", input.Name, id)
	if err != nil {
		return err
	}
	if taken {
		return duplicate("Team", "name")
	}
	found, err := exists(db, &model.Sport{}, "id = ?", input.SportId)
	if err != nil {
		return err
	}
	if !found {
		return notFound("Sport")
	}
	return nil
}

// SetTeamLogo stores the new logo and returns the team along with the url it replaced.
func SetTeamLogo(db *gorm.DB, id uuid.UUID, logoUrl string) (model.Team, string, error) {
	var team model.Team
	if err := db.First(&team, "id = ?", id).Error; err != nil {
		return team, "", translate(err, "Team")
	}
	previous := team.LogoUrl
	if err := db.Model(&team).Update("logo_url", logoUrl).Error; err != nil {
		return team, "", translate(err, "Team")
	}
	return team, previous, nil
}
