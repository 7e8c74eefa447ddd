package store

import "errors"

var (
	// ErrEmptyField is returned by Save when title or content is blank.
	ErrEmptyField = errors.New("store: title and content are required")
	// ErrInvalidField is returned by Save when title or date spans lines.
	ErrInvalidField = errors.New("store: title and date must be a single line")
	// ErrRead is returned when a note cannot be read or has no header.
	ErrRead = errors.New("store: read note")
	// ErrWrite is returned when a note cannot be written.
	ErrWrite = errors.New("store: write note")
	// ErrDelete is returned when a note cannot be removed.
	ErrDelete = errors.New("store: delete note")
)
