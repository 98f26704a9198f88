package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrSameTeams          = errors.New("same teams")
	ErrNoSeatsAvailable   = errors.New("no seats available")
	ErrAlreadyCancelled   = errors.New("already cancelled")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("inactive account")
)

// Error carries a client-facing message; errors.Is matches its Kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFound(entity string) error {
	return newError(ErrNotFound, "%s not found", entity)
}

func duplicate(entity, field string) error {
	return newError(ErrDuplicate, "%s with this %s already exists", entity, field)
}

// translate turns driver errors into service errors for entity.
func translate(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return newError(ErrDuplicate, "%s already exists", entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return newError(ErrInvalidReference, "%s references a record that does not exist", entity)
	}
	return fmt.Errorf("%s: %w", entity, err)
}

func exists(db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
