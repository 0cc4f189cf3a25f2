package image

import (
	"fmt"
	"sort"
)

// Factory builds a Backend for a pair of directories
type Factory func(from, to string, wopt WriteOption) Backend

var backends = make(map[string]Factory)

// RegisterBackend makes a backend available by name, usually from an init func
func RegisterBackend(name string, f Factory) {
	if f == nil {
		panic("imresize: Register backend is nil")
	}
	if _, dup := backends[name]; dup {
		panic("imresize: Register called twice for backend " + name)
	}
	backends[name] = f
}

// NewBackend returns a new instance of a registered backend
func NewBackend(name, from, to string, wopt WriteOption) (Backend, error) {
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return f(from, to, wopt), nil
}

// Backends returns the sorted names of registered backends
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilterIn returns the filter to use from the supported list, empty means the first one
func FilterIn(f Filter, supported []Filter) (Filter, error) {
	if len(supported) == 0 {
		return f, fmt.Errorf("%w: %q", ErrUnsupportedFilter, f)
	}
	if f == "" {
		return supported[0], nil
	}
	for _, s := range supported {
		if s == f {
			return f, nil
		}
	}
	return f, fmt.Errorf("%w: %q", ErrUnsupportedFilter, f)
}
