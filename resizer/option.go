package resizer

import (
	"io"

	zlog "github.com/go-imsto/imresize/log"
)

// Option ...
type Option func(*Resizer)

// WithOutput sets where the result line goes, os.Stdout by default
func WithOutput(w io.Writer) Option {
	return func(r *Resizer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithLogger ...
func WithLogger(l zlog.Logger) Option {
	return func(r *Resizer) {
		r.logger = l
	}
}
