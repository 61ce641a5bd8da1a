package services

import "errors"

var (
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrDuplicateName       = errors.New("name already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrForbidden           = errors.New("not the owner of this moodboard")
	ErrNotFound            = errors.New("not found")
	ErrUnknownMood         = errors.New("unknown mood")
	ErrCreationFailed      = errors.New("moodboard creation failed")
	ErrUpdateFailed        = errors.New("moodboard update failed")
	ErrDeletionFailed      = errors.New("moodboard deletion failed")
	ErrProviderUnavailable = errors.New("photo search provider unavailable")
)
