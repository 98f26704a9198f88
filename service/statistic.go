package service

import (
	"ticket_master/model"

	"gorm.io/gorm"
)

func GetStatistics(db *gorm.DB) (model.Statistics, error) {
	var stats model.Statistics
	counts := []struct {
		target *int64
		model  any
		where  string
		args   []any
	}{
		{&stats.Sports, &model.Sport{}, "", nil},
		{&stats.Teams, &model.Team{}, "", nil},
		{&stats.Stadiums, &model.Stadium{}, "", nil},
		{&stats.Events, &model.Event{}, "", nil},
		{&stats.Students, &model.User{}, "role = ?", []any{model.RoleStudent}},
		{&stats.Organizers, &model.User{}, "role = ?", []any{model.RoleOrganizer}},
		{&stats.Reservations, &model.SeatReservation{}, "is_cancelled = ?", []any{false}},
	}
	for _, c := range counts {
		query := db.Model(c.model)
		if c.where != "" {
			query = query.Where(c.where, c.args...)
		}
		if err := query.Count(c.target).Error; err != nil {
			return stats, err
		}
	}
	return stats, nil
}
