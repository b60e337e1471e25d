package resx

import "errors"

var (
	ErrNoRootElement     = errors.New("resx document has no root element")
	ErrFailedToParse     = errors.New("failed to parse resx document")
	ErrFailedToReadFile  = errors.New("failed to read resx file")
	ErrFailedToWriteFile = errors.New("failed to write resx file")
	ErrEmptyName         = errors.New("resource name is empty")
)
