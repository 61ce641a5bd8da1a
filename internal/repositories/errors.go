package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry is returned when a write violates a unique constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// translateError maps gorm sentinel errors onto the repository ones. The
// connection must be opened with TranslateError for duplicate keys to surface.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateEntry
	default:
		return err
	}
}
