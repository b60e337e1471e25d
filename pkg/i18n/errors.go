package i18n

import "errors"

var (
	// ErrInvalidCulture is returned when a culture name is not a well-formed BCP 47 tag.
	ErrInvalidCulture = errors.New("invalid culture name")

	// ErrNoSupportedCultures is returned when a strategy chain is built without cultures.
	ErrNoSupportedCultures = errors.New("no supported cultures configured")
)
