package catalog

import "errors"

var (
	ErrFailedToParseJSON = errors.New("failed to parse JSON resources")
	ErrFailedToParseYAML = errors.New("failed to parse YAML resources")
	ErrFailedToParseResx = errors.New("failed to parse resx resources")
	ErrInvalidStructure  = errors.New("resources must be a mapping of names to values")
	ErrFailedToIndex     = errors.New("failed to index resource files")
	ErrUnknownPath       = errors.New("no resources for logical path")
)
