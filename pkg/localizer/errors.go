package localizer

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("resource not found")
	ErrMissingManifest = errors.New("no resources found for culture or any of its parents")
)
