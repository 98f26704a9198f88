package service

import (
	"strings"
	"ticket_master/helper"
	"ticket_master/model"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func eventQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.Event{}).
		Preload("Sport").
		Preload("Stadium").
		Preload("TeamOne").
		Preload("TeamTwo").
		Preload("Organizer")
}

// reservedCounts returns the number of active reservations per event.
func reservedCounts(db *gorm.DB, eventIds []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(eventIds))
	if len(eventIds) == 0 {
		return counts, nil
	}
	var rows []struct {
		EventId uuid.UUID
		Total   int64
	}
	err := db.Model(&model.SeatReservation{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ? AND is_cancelled = ?", eventIds, false).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.EventId] = row.Total
	}
	return counts, nil
}

func withCounts(db *gorm.DB, events []model.Event) ([]model.EventResponse, error) {
	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	counts, err := reservedCounts(db, ids)
	if err != nil {
		return nil, err
	}
	result := make([]model.EventResponse, 0, len(events))
	for _, e := range events {
		response := model.EventResponse{Event: e, ReservedSeats: counts[e.ID]}
		if e.Stadium != nil {
			response.Capacity = e.Stadium.Capacity
		}
		result = append(result, response)
	}
	return result, nil
}

func GetEvents(db *gorm.DB, filter model.EventFilter) ([]model.EventResponse, error) {
	query := eventQuery(db)
	if filter.SportId != uuid.Nil {
		query = query.Where("sport_id = ?", filter.SportId)
	}
	if filter.StadiumId != uuid.Nil {
		query = query.Where("stadium_id = ?", filter.StadiumId)
	}
	if filter.OrganizerId != uuid.Nil {
		query = query.Where("organizer_id = ?", filter.OrganizerId)
	}
	if filter.TeamId != uuid.Nil {
		query = query.Where("team_one_id = ? OR team_two_id = ?", filter.TeamId, filter.TeamId)
	}
	if filter.StartsAfter != nil {
		query = query.Where("start_date_time > ?", *filter.StartsAfter)
	}

	var events []model.Event
	if err := query.Order("start_date_time ASC").Find(&events).Error; err != nil {
		return nil, translate(err, "Event")
	}
	return withCounts(db, events)
}

// GetUpcomingEvents lists events starting after now that still have free seats.
func GetUpcomingEvents(db *gorm.DB, now time.Time) ([]model.EventResponse, error) {
	events, err := GetEvents(db, model.EventFilter{StartsAfter: &now})
	if err != nil {
		return nil, err
	}
	open := make([]model.EventResponse, 0, len(events))
	for _, e := range events {
		if e.AvailableSeats() > 0 {
			open = append(open, e)
		}
	}
	return open, nil
}

func getEvent(db *gorm.DB, query string, arg any) (model.EventResponse, error) {
	var event model.Event
	if err := eventQuery(db).Where(query, arg).First(&event).Error; err != nil {
		return model.EventResponse{}, translate(err, "Event")
	}
	responses, err := withCounts(db, []model.Event{event})
	if err != nil {
		return model.EventResponse{}, err
	}
	return responses[0], nil
}

func GetEventById(db *gorm.DB, id uuid.UUID) (model.EventResponse, error) {
	return getEvent(db, "id = ?", id)
}

func GetEventBySlug(db *gorm.DB, slug string) (model.EventResponse, error) {
	return getEvent(db, "slug = ?", slug)
}

// GetOrganizerEvent loads an event only if organizerId runs it.
func GetOrganizerEvent(db *gorm.DB, organizerId, id uuid.UUID) (model.EventResponse, error) {
	event, err := GetEventById(db, id)
	if err != nil {
		return event, err
	}
	if event.OrganizerId != organizerId {
		return model.EventResponse{}, notFound("Event")
	}
	return event, nil
}

func CreateEvent(db *gorm.DB, input model.CreateEventInput) (uuid.UUID, error) {
	if err := checkEventReferences(db, input); err != nil {
		return uuid.Nil, err
	}

	event := model.Event{
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		StartDateTime: input.StartDateTime,
		EndDateTime:   input.EndDateTime,
		SportId:       input.SportId,
		StadiumId:     input.StadiumId,
		TeamOneId:     input.TeamOneId,
		TeamTwoId:     input.TeamTwoId,
		OrganizerId:   input.OrganizerId,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.GenerateUniqueEventSlug(tx, event.Name, uuid.Nil)
		if err != nil {
			return err
		}
		event.Slug = slug
		return tx.Create(&event).Error
	})
	if err != nil {
		return uuid.Nil, translate(err, "Event")
	}
	return event.ID, nil
}

func UpdateEvent(db *gorm.DB, id uuid.UUID, input model.UpdateEventInput) (uuid.UUID, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			return err
		}
		name := strings.TrimSpace(input.Name)
		if name != event.Name {
			slug, err := helper.GenerateUniqueEventSlug(tx, name, event.ID)
			if err != nil {
				return err
			}
			event.Slug = slug
		}
		event.Name = name
		event.Description = strings.TrimSpace(input.Description)
		event.StartDateTime = input.StartDateTime
		event.EndDateTime = input.EndDateTime
		return tx.Save(&event).Error
	})
	if err != nil {
		return uuid.Nil, translate(err, "Event")
	}
	return id, nil
}

func checkEventReferences(db *gorm.DB, input model.CreateEventInput) error {
	if input.TeamOneId == input.TeamTwoId {
		return newError(ErrSameTeams, "An event needs two different teams")
	}
	refs := []struct {
		entity string
		model  any
		id     uuid.UUID
	}{
		{"Sport", &model.Sport{}, input.SportId},
		{"Stadium", &model.Stadium{}, input.StadiumId},
		{"Team one", &model.Team{}, input.TeamOneId},
		{"Team two", &model.Team{}, input.TeamTwoId},
	}
	for _, ref := range refs {
		found, err := exists(db, ref.model, "id = ?", ref.id)
		if err != nil {
			return err
		}
		if !found {
			return notFound(ref.entity)
		}
	}

	var organizer model.User
	if err := db.First(&organizer, "id = ?", input.OrganizerId).Error; err != nil {
		return translate(err, "Organizer")
	}
	if organizer.Role != model.RoleOrganizer {
		return newError(ErrInvalidReference, "User %s is not an organizer", organizer.Email)
	}
	return nil
}
