package image

import (
	"errors"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidSize       = errors.New("invalid image size")
	ErrUnknownOption     = errors.New("unknown resize option")
	ErrInvalidOption     = errors.New("invalid resize option")
	ErrUnsupportedFilter = errors.New("unsupported resample filter")
	ErrUnknownBackend    = errors.New("unknown backend")
)
