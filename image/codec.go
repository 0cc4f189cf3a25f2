package image

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// formats
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWEBP = "webp"
)

var extFormats = map[string]string{
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".png":  FormatPNG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWEBP,
}

type encodeFunc func(w io.Writer, m image.Image, wopt WriteOption) error

var encoders = map[string]encodeFunc{
	FormatJPEG: func(w io.Writer, m image.Image, wopt WriteOption) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: wopt.EncodeQuality()})
	},
	FormatPNG: func(w io.Writer, m image.Image, _ WriteOption) error {
		return png.Encode(w, m)
	},
	FormatGIF: func(w io.Writer, m image.Image, _ WriteOption) error {
		return gif.Encode(w, m, nil)
	},
	FormatBMP: func(w io.Writer, m image.Image, _ WriteOption) error {
		return bmp.Encode(w, m)
	},
	FormatTIFF: func(w io.Writer, m image.Image, _ WriteOption) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	},
}

// Ext2Format returns the format for a file extension or name, "" if unknown
func Ext2Format(s string) string {
	ext := strings.ToLower(filepath.Ext(s))
	if ext == "" {
		ext = "." + strings.ToLower(s)
	}
	return extFormats[ext]
}

// FormatFromName returns the encodable format of a file name
func FormatFromName(name string) (string, error) {
	format := Ext2Format(name)
	if _, ok := encoders[format]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return format, nil
}

// SaveTo encodes m in wopt.Format and returns the bytes written
func SaveTo(w io.Writer, m image.Image, wopt WriteOption) (int, error) {
	enc, ok := encoders[wopt.Format]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, wopt.Format)
	}
	cw := &CountWriter{}
	if err := enc(io.MultiWriter(w, cw), m, wopt); err != nil {
		return cw.Len(), err
	}
	return cw.Len(), nil
}

// DecodeFile decodes any registered format, the error of the decoder is returned as is
func DecodeFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	logger().Debugw("decoded", "file", filename, "format", format, "bounds", m.Bounds())
	return m, nil
}

// EncodeByName returns an EncodeFunc that picks the format from the output file name
func EncodeByName(wopt WriteOption) EncodeFunc {
	return func(w io.Writer, m image.Image, name string) error {
		format, err := FormatFromName(name)
		if err != nil {
			return err
		}
		opt := wopt
		opt.Format = format
		_, err = SaveTo(w, m, opt)
		return err
	}
}
