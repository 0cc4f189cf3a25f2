package image

import (
	"fmt"
	"image"
	"image/draw"
	"math"
)

// Layout is what a backend does to honor a Size and Mode:
// scale the source to Width x Height, then keep only Crop when it is not empty.
type Layout struct {
	Width, Height int
	Crop          image.Rectangle
}

func (l Layout) String() string {
	if l.Crop.Empty() {
		return fmt.Sprintf("%dx%d", l.Width, l.Height)
	}
	return fmt.Sprintf("%dx%d crop %v", l.Width, l.Height, l.Crop)
}

// LayoutFor computes the layout for a source with bounds b.
// Fit and crop need both sides, with a zero side they fall back to scale.
func LayoutFor(b image.Rectangle, size Size, mode Mode) Layout {
	ow, oh := b.Dx(), b.Dy()
	w, h := size.Width, size.Height
	if ow <= 0 || oh <= 0 {
		return Layout{Width: atLeastOne(w), Height: atLeastOne(h)}
	}
	if w == 0 || h == 0 {
		mode = ModeScale
	}

	rel := float64(ow) / float64(oh)
	switch mode {
	case ModeFit:
		if rel >= float64(w)/float64(h) {
			h = round(float64(w) / rel)
		} else {
			w = round(float64(h) * rel)
		}
		return Layout{Width: atLeastOne(w), Height: atLeastOne(h)}
	case ModeCrop:
		ratioX := float64(w) / float64(ow)
		ratioY := float64(h) / float64(oh)
		cw, ch := w, h
		if ratioX > ratioY {
			ch = int(math.Ceil(ratioX * float64(oh)))
		} else {
			cw = int(math.Ceil(ratioY * float64(ow)))
		}
		if cw < w {
			cw = w
		}
		if ch < h {
			ch = h
		}
		l := Layout{Width: cw, Height: ch}
		if cw != w || ch != h {
			x := (cw - w) / 2
			y := (ch - h) / 2
			l.Crop = image.Rect(x, y, x+w, y+h)
		}
		return l
	}

	if w == 0 {
		w = round(float64(h) * rel)
	} else if h == 0 {
		h = round(float64(w) / rel)
	}
	return Layout{Width: atLeastOne(w), Height: atLeastOne(h)}
}

// Crop copies the region r (relative to the top-left of m) into a new RGBA image
func Crop(m image.Image, r image.Rectangle) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), m, r.Min.Add(m.Bounds().Min), draw.Src)
	return dst
}

func round(f float64) int {
	return int(math.Round(f))
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
