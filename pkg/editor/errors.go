package editor

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidPath     = errors.New("invalid resource id")
	ErrBaseNotFound    = errors.New("base resource file not found")
	ErrFailedToLoad    = errors.New("failed to load resource file")
	ErrFailedToSave    = errors.New("failed to save override file")
)
