// Package backend resizes with the scalers of golang.org/x/image/draw
package backend

import (
	"image"

	"golang.org/x/image/draw"

	cimg "github.com/go-imsto/imresize/image"
)

// Name of the backend in the registry
const Name = "scale"

var filterNames = []cimg.Filter{"catmullrom", "nearest", "approxbilinear", "bilinear"}

var interpolators = map[cimg.Filter]draw.Interpolator{
	"catmullrom":     draw.CatmullRom,
	"nearest":        draw.NearestNeighbor,
	"approxbilinear": draw.ApproxBiLinear,
	"bilinear":       draw.BiLinear,
}

type scaler struct {
	*cimg.DirHandler
}

func init() {
	cimg.RegisterBackend(Name, New)
}

// New ...
func New(from, to string, wopt cimg.WriteOption) cimg.Backend {
	return &scaler{cimg.NewDirHandler(Name, from, to, cimg.DecodeFile, cimg.EncodeByName(wopt))}
}

func (b *scaler) Filters() []cimg.Filter {
	return filterNames
}

func (b *scaler) Resize(m image.Image, size cimg.Size, opt cimg.ResizeOption) (image.Image, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	f, err := cimg.FilterIn(opt.Filter, filterNames)
	if err != nil {
		return nil, err
	}
	l := cimg.LayoutFor(m.Bounds(), size, opt.Mode)
	dst := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	interpolators[f].Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	if !l.Crop.Empty() {
		return cimg.Crop(dst, l.Crop), nil
	}
	return dst, nil
}
