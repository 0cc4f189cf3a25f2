//go:build cgo

package image

import (
	"image"
	"io"

	"github.com/chai2010/webp"
)

func init() {
	encoders[FormatWEBP] = func(w io.Writer, m image.Image, wopt WriteOption) error {
		return webp.Encode(w, m, &webp.Options{Quality: float32(wopt.EncodeQuality())})
	}
}
