package resolve

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSecret is returned when a role that requires a password has
	// none configured.
	ErrMissingSecret = errors.New("missing secret")

	// ErrMissingRoutingSlot matches every *MissingRoutingSlotError.
	ErrMissingRoutingSlot = errors.New("missing routing slot")

	// ErrNamedSectionMissing matches every *NamedSectionMissingError.
	ErrNamedSectionMissing = errors.New("named section missing")

	// ErrCertificateNotFound is returned when the configured certificate
	// path does not exist.
	ErrCertificateNotFound = errors.New("certificate file not found")

	// ErrKeyNotFound is returned when the configured private key path does
	// not exist.
	ErrKeyNotFound = errors.New("private key file not found")

	// ErrEmptyField matches every *EmptyFieldError.
	ErrEmptyField = errors.New("required field empty")

	// ErrInvalidField matches every *InvalidFieldError.
	ErrInvalidField = errors.New("field out of range")

	// ErrUnsupportedProtocol is returned for a storage protocol other than
	// tcp or http.
	ErrUnsupportedProtocol = errors.New("unsupported storage protocol")
)

// MissingRoutingSlotError reports a cache purpose whose slot was never
// configured.
type MissingRoutingSlotError struct {
	Purpose Purpose
}

func (e *MissingRoutingSlotError) Error() string {
	return fmt.Sprintf("cache routing slot for purpose %q not configured", e.Purpose)
}

func (e *MissingRoutingSlotError) Is(target error) bool {
	return target == ErrMissingRoutingSlot
}

// NamedSectionMissingError reports a named server entry that is absent.
// When the whole servers section is absent, Err holds the
// *config.MissingSectionError.
type NamedSectionMissingError struct {
	Name ServerName
	Err  error
}

func (e *NamedSectionMissingError) Error() string {
	return fmt.Sprintf("missing [servers.%s] section", e.Name)
}

func (e *NamedSectionMissingError) Is(target error) bool {
	return target == ErrNamedSectionMissing
}

func (e *NamedSectionMissingError) Unwrap() error {
	return e.Err
}

// EmptyFieldError reports a section that is present but has an empty value
// where the caller needs one.
type EmptyFieldError struct {
	Section string
	Field   string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("[%s] %s is empty", e.Section, e.Field)
}

func (e *EmptyFieldError) Is(target error) bool {
	return target == ErrEmptyField
}

// MaxPort is the highest valid TCP port.
const MaxPort = 65535

// InvalidFieldError reports a present value outside its valid range, such
// as a port above MaxPort or a negative cache slot.
type InvalidFieldError struct {
	Section string
	Field   string
	Value   int
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("[%s] %s is out of range: %d", e.Section, e.Field, e.Value)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
