package utils

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)
	ErrVenueNotFound    = fmt.Errorf("venue %w", ErrNotFound)
	ErrArtistNotFound   = fmt.Errorf("artist %w", ErrNotFound)
	ErrPageOutOfRange   = errors.New("page out of range")
	ErrConflict         = errors.New("resource already exists")
	ErrDatabaseError    = errors.New("database error")
)
