// Package backend resizes with github.com/nfnt/resize and saves with the codecs of package image.
package backend

import (
	"image"

	"github.com/nfnt/resize"

	cimg "github.com/go-imsto/imresize/image"
)

// Name of the backend in the registry
const Name = "resample"

var filterNames = []cimg.Filter{"bicubic", "nearest", "bilinear", "mitchell", "lanczos2", "lanczos3"}

var interps = map[cimg.Filter]resize.InterpolationFunction{
	"bicubic":  resize.Bicubic,
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

type resampler struct {
	*cimg.DirHandler
}

var _ cimg.Backend = (*resampler)(nil)

func init() {
	cimg.RegisterBackend(Name, New)
}

// New ...
func New(from, to string, wopt cimg.WriteOption) cimg.Backend {
	return &resampler{cimg.NewDirHandler(Name, from, to, cimg.DecodeFile, cimg.EncodeByName(wopt))}
}

func (b *resampler) Filters() []cimg.Filter {
	return filterNames
}

func (b *resampler) Resize(m image.Image, size cimg.Size, opt cimg.ResizeOption) (image.Image, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	f, err := cimg.FilterIn(opt.Filter, filterNames)
	if err != nil {
		return nil, err
	}
	l := cimg.LayoutFor(m.Bounds(), size, opt.Mode)
	out := resize.Resize(uint(l.Width), uint(l.Height), m, interps[f])
	if !l.Crop.Empty() {
		out = cimg.Crop(out, l.Crop)
	}
	return out, nil
}
