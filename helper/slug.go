package helper

import (
	"fmt"
	"ticket_master/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueEventSlug returns a slug for name not used by any other event.
// exclude skips the event being renamed.
func GenerateUniqueEventSlug(tx *gorm.DB, name string, exclude uuid.UUID) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "event"
	}
	result := base
	i := 1

	for {
		var count int64
		query := tx.Model(&model.Event{}).Where("slug = ?", result)
		if exclude != uuid.Nil {
			query = query.Where("id <> ?", exclude)
		}
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return result, nil
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}
}
