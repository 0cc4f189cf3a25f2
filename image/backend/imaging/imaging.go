// Package backend resizes with github.com/disintegration/imaging.
//
// Decoding honors EXIF orientation, saving supports jpeg, png, gif, tiff and bmp.
// ModeFit never enlarges, a source already inside WxH is returned at its own size.
package backend

import (
	"image"
	"io"

	"github.com/disintegration/imaging"

	cimg "github.com/go-imsto/imresize/image"
)

// Name of the backend in the registry
const Name = "imaging"

var filterNames = []cimg.Filter{
	"lanczos", "nearest", "box", "linear", "hermite", "mitchell", "catmullrom",
	"bspline", "gaussian", "bartlett", "hann", "hamming", "blackman", "welch", "cosine",
}

var filters = map[cimg.Filter]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"nearest":    imaging.NearestNeighbor,
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"hermite":    imaging.Hermite,
	"mitchell":   imaging.MitchellNetravali,
	"catmullrom": imaging.CatmullRom,
	"bspline":    imaging.BSpline,
	"gaussian":   imaging.Gaussian,
	"bartlett":   imaging.Bartlett,
	"hann":       imaging.Hann,
	"hamming":    imaging.Hamming,
	"blackman":   imaging.Blackman,
	"welch":      imaging.Welch,
	"cosine":     imaging.Cosine,
}

type imagingBackend struct {
	*cimg.DirHandler
	wopt cimg.WriteOption
}

var _ cimg.Backend = (*imagingBackend)(nil)

func init() {
	cimg.RegisterBackend(Name, New)
}

// New returns the imaging backend for a pair of directories
func New(from, to string, wopt cimg.WriteOption) cimg.Backend {
	b := &imagingBackend{wopt: wopt}
	b.DirHandler = cimg.NewDirHandler(Name, from, to, decode, b.encode)
	return b
}

func decode(filename string) (image.Image, error) {
	return imaging.Open(filename, imaging.AutoOrientation(true))
}

func (b *imagingBackend) encode(w io.Writer, m image.Image, name string) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return err
	}
	return imaging.Encode(w, m, format, imaging.JPEGQuality(b.wopt.EncodeQuality()))
}

func (b *imagingBackend) Filters() []cimg.Filter {
	return filterNames
}

func (b *imagingBackend) Resize(m image.Image, size cimg.Size, opt cimg.ResizeOption) (image.Image, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	f, err := cimg.FilterIn(opt.Filter, filterNames)
	if err != nil {
		return nil, err
	}
	rf := filters[f]
	whole := size.Width > 0 && size.Height > 0
	switch {
	case opt.Mode == cimg.ModeFit && whole:
		return imaging.Fit(m, size.Width, size.Height, rf), nil
	case opt.Mode == cimg.ModeCrop && whole:
		return imaging.Fill(m, size.Width, size.Height, imaging.Center, rf), nil
	}
	return imaging.Resize(m, size.Width, size.Height, rf), nil
}
