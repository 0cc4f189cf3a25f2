package image

import (
	"fmt"
	"image/jpeg"
	"sort"
	"strconv"
	"strings"
)

// Filter names a resampling kernel, the set of valid names depends on the backend
type Filter string

// Mode how the source is mapped onto the target size
type Mode uint8

const (
	// ModeScale stretches to exactly WxH
	ModeScale Mode = iota
	// ModeFit keeps the aspect ratio inside WxH. Whether a smaller source is
	// enlarged depends on the backend, imaging keeps it as is.
	ModeFit
	// ModeCrop covers WxH then cuts the center
	ModeCrop
)

var modeNames = map[Mode]string{
	ModeScale: "scale",
	ModeFit:   "fit",
	ModeCrop:  "crop",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode ...
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeScale, nil
	}
	for m, name := range modeNames {
		if name == strings.ToLower(s) {
			return m, nil
		}
	}
	return ModeScale, fmt.Errorf("%w: mode %q", ErrInvalidOption, s)
}

// ResizeOption is the full set of options a backend resize accepts
type ResizeOption struct {
	// Filter resampling kernel, empty means the backend default
	Filter Filter `json:"filter,omitempty"`
	// Mode defaults to ModeScale
	Mode Mode `json:"mode,omitempty"`
}

func (o ResizeOption) String() string {
	return fmt.Sprintf("filter=%s mode=%s", o.Filter, o.Mode)
}

// option keys accepted by ParseOptions
const (
	OptFilter = "filter"
	OptMode   = "mode"
)

// ParseOptions builds a ResizeOption from key/value pairs and rejects unknown keys
func ParseOptions(kv map[string]string) (opt ResizeOption, err error) {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := kv[k]
		switch k {
		case OptFilter:
			if v = strings.ToLower(strings.TrimSpace(v)); v == "" {
				return opt, fmt.Errorf("%w: empty %s", ErrInvalidOption, k)
			}
			opt.Filter = Filter(v)
		case OptMode:
			if opt.Mode, err = ParseMode(v); err != nil {
				return
			}
		default:
			return opt, fmt.Errorf("%w: %q", ErrUnknownOption, k)
		}
	}
	return
}

// Quality of lossy encoders, 1 - 100
type Quality uint8

const (
	DefaultQuality Quality = jpeg.DefaultQuality // 75
	maxQuality     Quality = 100
)

// WriteOption options for encoding the saved file
type WriteOption struct {
	Format  string
	Quality Quality
}

// EncodeQuality returns the quality handed to lossy encoders
func (wopt WriteOption) EncodeQuality() int {
	if wopt.Quality == 0 {
		return int(DefaultQuality)
	}
	if wopt.Quality > maxQuality {
		return int(maxQuality)
	}
	return int(wopt.Quality)
}
