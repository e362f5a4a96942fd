package config

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceUnreadable is returned when the resource does not exist or
	// cannot be read.
	ErrResourceUnreadable = errors.New("configuration resource unreadable")

	// ErrMalformedDocument is returned when the resource text cannot be
	// parsed into a Document.
	ErrMalformedDocument = errors.New("malformed configuration document")

	// ErrPersist is returned when a document cannot be written back.
	ErrPersist = errors.New("failed to persist configuration")

	// ErrMissingSection matches every *MissingSectionError.
	ErrMissingSection = errors.New("configuration section missing")

	// ErrAlreadyPublished is returned by a second Publish on the same Context.
	ErrAlreadyPublished = errors.New("configuration already published")

	// ErrNotPublished is returned by Get before any successful Publish.
	ErrNotPublished = errors.New("configuration not published")
)

// MissingSectionError reports a required section that is absent from a
// document. It is a structural error, distinct from a present section with
// empty fields.
type MissingSectionError struct {
	Section Section
}

// Error returns the error message.
func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("missing [%s] section", e.Section)
}

// Is makes errors.Is(err, ErrMissingSection) hold.
func (e *MissingSectionError) Is(target error) bool {
	return target == ErrMissingSection
}
