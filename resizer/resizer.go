// Package resizer runs a batch resize of one directory into another.
//
// The Resizer only knows the image.Backend interface, backends are picked by
// name from the registry of package image. Programs blank-import the backend
// packages they want, for example:
//
//	import _ "github.com/go-imsto/imresize/image/backend/imaging"
package resizer

import (
	"fmt"
	"io"
	"os"

	cimg "github.com/go-imsto/imresize/image"
	zlog "github.com/go-imsto/imresize/log"
	"github.com/go-imsto/imresize/utils"
)

// defaults of a Job
const (
	DefaultExt     = "png"
	DefaultBackend = "imaging"
)

// DefaultSize ...
var DefaultSize = cimg.Size{Width: 256, Height: 256}

// Job describes one batch run, zero fields take the defaults
type Job struct {
	Ext     string
	Size    cimg.Size
	Backend string
	Options cimg.ResizeOption
	Quality cimg.Quality
}

func (j *Job) fill() {
	if j.Ext == "" {
		j.Ext = DefaultExt
	}
	if j.Size.IsZero() {
		j.Size = DefaultSize
	}
	if j.Backend == "" {
		j.Backend = DefaultBackend
	}
}

// Resizer resizes the images of one directory into another.
// Both paths are used as prefixes, keep the trailing separator.
type Resizer struct {
	from, to string
	out      io.Writer
	logger   zlog.Logger
}

// New ...
func New(from, to string, opts ...Option) *Resizer {
	r := &Resizer{from: from, to: to, out: os.Stdout}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zlog.Get()
	}
	return r
}

// ResizeAll resizes every file of from whose name ends with job.Ext and saves it into to.
// It stops at the first error, files saved before it are kept.
func (r *Resizer) ResizeAll(job Job) (count int, err error) {
	job.fill()
	existed := utils.IsDir(r.to)
	if err = utils.EnsureDir(r.to); err != nil {
		return
	}
	if !existed {
		r.logger.Debugw("created destination", "dir", r.to)
	}

	var b cimg.Backend
	b, err = cimg.NewBackend(job.Backend, r.from, r.to, cimg.WriteOption{Quality: job.Quality})
	if err != nil {
		return
	}
	r.logger.Debugw("resize all", "handler", b, "ext", job.Ext, "size", job.Size, "opt", job.Options)

	var it *cimg.Iterator
	it, err = b.Open(job.Ext)
	if err != nil {
		return
	}
	for it.Next() {
		var m = it.Image()
		if m, err = b.Resize(m, job.Size, job.Options); err != nil {
			r.logger.Warnw("resize fail", "name", it.Name(), "err", err)
			return
		}
		if err = b.Save(m, it.Name()); err != nil {
			r.logger.Warnw("save fail", "name", it.Name(), "err", err)
			return
		}
		count++
	}
	if err = it.Err(); err != nil {
		r.logger.Warnw("open fail", "count", count, "err", err)
		return
	}

	r.logger.Debugw("resize done", "count", count, "ext", job.Ext, "backend", job.Backend)
	fmt.Fprintf(r.out, " Successfully resized %d %s image/images.\n", count, job.Ext)
	return
}
