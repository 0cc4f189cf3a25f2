package image

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a target width and height in pixels, a zero side keeps the aspect ratio
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Validate ...
func (s Size) Validate() error {
	if s.Width < 0 || s.Height < 0 || s.Width == 0 && s.Height == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSize, s)
	}
	return nil
}

// IsZero ...
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// ParseSize parses "256" (square) or "256x128", a side may be 0
func ParseSize(s string) (sz Size, err error) {
	ws, hs := s, s
	if i := strings.IndexByte(s, 'x'); i >= 0 {
		ws, hs = s[:i], s[i+1:]
	}
	if sz.Width, err = strconv.Atoi(ws); err != nil {
		return sz, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	if sz.Height, err = strconv.Atoi(hs); err != nil {
		return sz, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	err = sz.Validate()
	return
}
